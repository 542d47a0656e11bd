package ppv2

import "net"

// Header carries the information decoded from a PROXY protocol v2 header.
//
// A Header owns every byte it exposes: SourceIP, DestIP, and TLV are copies,
// so the Header remains valid after the buffer passed to Decode is reused.
type Header struct {
	Command  Command
	Family   AddrFamily
	Protocol Proto

	// SourceIP and DestIP are 4 or 16 bytes for the INET and INET6 families,
	// and nil for every other family.
	SourceIP net.IP
	DestIP   net.IP

	// SourcePort and DestPort are meaningful only when HasAddrs reports true.
	SourcePort uint16
	DestPort   uint16

	// TLV is the raw extension region following the address section. This
	// package does not interpret it. For the UNIX family and unrecognized
	// families the entire address section is preserved here unmodified.
	TLV []byte

	// TLVOffset is the index into the buffer passed to Decode at which the
	// TLV region begins.
	TLVOffset int
}

// Version always returns 2.
func (Header) Version() int { return 2 }

// HasAddrs reports whether the header carried a decoded address section.
// INET and INET6 headers always carry both addresses and both ports; all
// other families carry neither.
func (h Header) HasAddrs() bool { return h.SourceIP != nil }

// Source returns the source address as TCP, UDP, or nil depending on Protocol and Family.
func (h Header) Source() net.Addr { return h.addr(h.SourceIP, h.SourcePort) }

// Dest returns the destination address as TCP, UDP, or nil depending on Protocol and Family.
func (h Header) Dest() net.Addr { return h.addr(h.DestIP, h.DestPort) }

func (h Header) addr(ip net.IP, port uint16) net.Addr {
	if ip == nil {
		return nil
	}
	switch h.Protocol {
	case ProtoStream:
		return &net.TCPAddr{IP: ip, Port: int(port)}
	case ProtoDGram:
		return &net.UDPAddr{IP: ip, Port: int(port)}
	}
	return nil
}
