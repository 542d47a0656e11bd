// Package ppv2 decodes the binary header of the PROXY protocol version 2.
//
// The PROXY protocol is used by load balancers and reverse proxies to relay
// the original client/server connection endpoints across an intermediary hop.
// https://www.haproxy.org/download/1.8/doc/proxy-protocol.txt
//
// Decode consumes an in-memory buffer that has already been read off a
// connection; acquiring bytes from a socket, building outbound headers, and
// interpreting TLV extension records are the caller's concern.
package ppv2

// sigV2 is the fixed 12-byte signature every v2 header begins with.
var sigV2 = []byte("\x0D\x0A\x0D\x0A\x00\x0D\x0A\x51\x55\x49\x54\x0A")

const (
	sigLen   = 12
	frameLen = 16

	// Address section sizes per family: src + dst addresses, src + dst ports.
	inetAddrLen  = 12
	inet6AddrLen = 36
)
