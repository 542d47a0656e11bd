package ppv2

import "fmt"

// AddrFamily represents the address family declared in a v2 header.
//
// It is an open enum: nibble values beyond the ones named below are carried
// through unchanged rather than rejected, so headers using a family this
// package does not decode still yield their version, command, and length.
type AddrFamily byte

const (
	// AddrFamilyUnspec means the connection is forwarded for an unknown, unspecified or unsupported protocol.
	AddrFamilyUnspec AddrFamily = 0x00

	// AddrFamilyInet is used when the forwarded connection uses the AF_INET address family (IPv4).
	AddrFamilyInet AddrFamily = 0x01

	// AddrFamilyInet6 is used when the forwarded connection uses the AF_INET6 address family (IPv6).
	AddrFamilyInet6 AddrFamily = 0x02

	// AddrFamilyUnix is used when the forwarded connection uses the AF_UNIX address family (UNIX).
	AddrFamilyUnix AddrFamily = 0x03
)

func (f AddrFamily) String() string {
	switch f {
	case AddrFamilyUnspec:
		return "unspec"
	case AddrFamilyInet:
		return "inet"
	case AddrFamilyInet6:
		return "inet6"
	case AddrFamilyUnix:
		return "unix"
	}
	return fmt.Sprintf("unknown(0x%x)", byte(f))
}
