package ppv2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
)

// frame holds the fields of the fixed 16-byte prefix after validation.
type frame struct {
	command Command
	family  AddrFamily
	proto   Proto
	length  int
}

// validateFrame checks the signature and fixed fields of buf and confirms the
// declared length fits inside it. Nothing past the signature is trusted until
// the signature matches.
func validateFrame(buf []byte) (frame, error) {
	var f frame
	if len(buf) < frameLen {
		return f, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, frameLen, len(buf))
	}
	if !bytes.Equal(buf[:sigLen], sigV2) {
		return f, ErrBadSignature
	}

	// highest 4 bits indicate version, lowest 4 the command
	verCmd := buf[12]
	if verCmd>>4 != 2 {
		return f, fmt.Errorf("%w: %d", ErrUnsupportedVersion, verCmd>>4)
	}
	f.command = Command(verCmd & 0xf)
	if f.command > CommandProxy {
		return f, fmt.Errorf("%w: 0x%x", ErrInvalidCommand, byte(f.command))
	}

	// highest 4 bits indicate address family, lowest 4 the transport
	// protocol; both are open enums and never fail validation here.
	f.family = AddrFamily(buf[13] >> 4)
	f.proto = Proto(buf[13] & 0xf)

	f.length = int(binary.BigEndian.Uint16(buf[14:16]))
	if frameLen+f.length > len(buf) {
		return f, fmt.Errorf("%w: declared length %d, have %d bytes after frame",
			ErrTruncated, f.length, len(buf)-frameLen)
	}
	return f, nil
}

// addrSection is the decoded address block of a header. size is the number of
// leading bytes it consumed from the declared-length region; the remainder is
// the TLV region. A zero addrSection (size 0, nil IPs) means the family
// carries no address data this package decodes.
type addrSection struct {
	srcIP, dstIP     net.IP
	srcPort, dstPort uint16
	size             int
}

// decodeAddrs decodes the fixed-size address block for family from b, the
// declared-length region following the frame. Ports are always read as
// big-endian; the wire format is network byte order regardless of host.
func decodeAddrs(family AddrFamily, b []byte) (addrSection, error) {
	var a addrSection
	switch family {
	case AddrFamilyInet:
		if len(b) < inetAddrLen {
			return a, fmt.Errorf("%w: inet address section needs %d bytes, have %d",
				ErrTruncated, inetAddrLen, len(b))
		}
		a.srcIP = append(net.IP(nil), b[0:4]...)
		a.dstIP = append(net.IP(nil), b[4:8]...)
		a.srcPort = binary.BigEndian.Uint16(b[8:10])
		a.dstPort = binary.BigEndian.Uint16(b[10:12])
		a.size = inetAddrLen
	case AddrFamilyInet6:
		if len(b) < inet6AddrLen {
			return a, fmt.Errorf("%w: inet6 address section needs %d bytes, have %d",
				ErrTruncated, inet6AddrLen, len(b))
		}
		a.srcIP = append(net.IP(nil), b[0:16]...)
		a.dstIP = append(net.IP(nil), b[16:32]...)
		a.srcPort = binary.BigEndian.Uint16(b[32:34])
		a.dstPort = binary.BigEndian.Uint16(b[34:36])
		a.size = inet6AddrLen
	}
	// UNSPEC carries no address data. UNIX and unrecognized families are not
	// decoded; the whole region stays available to the caller as TLV bytes so
	// version, command, and length remain recoverable.
	return a, nil
}

// Decode parses a PROXY protocol v2 header from the start of buf.
//
// buf must contain the complete header: the 16-byte frame plus the number of
// bytes its length field declares. Trailing bytes past the declared length
// (the proxied payload) are ignored. buf is never modified, and the returned
// Header does not alias it.
//
// On failure Decode returns the zero Header and one of ErrTruncated,
// ErrBadSignature, ErrUnsupportedVersion, or ErrInvalidCommand, possibly
// wrapped.
func Decode(buf []byte) (Header, error) {
	f, err := validateFrame(buf)
	if err != nil {
		return Header{}, err
	}

	rest := buf[frameLen : frameLen+f.length]
	a, err := decodeAddrs(f.family, rest)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Command:    f.command,
		Family:     f.family,
		Protocol:   f.proto,
		SourceIP:   a.srcIP,
		DestIP:     a.dstIP,
		SourcePort: a.srcPort,
		DestPort:   a.dstPort,
		TLV:        append([]byte(nil), rest[a.size:]...),
		TLVOffset:  frameLen + a.size,
	}, nil
}
