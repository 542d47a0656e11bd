package ppv2

import "errors"

// Decode errors. All of them fail closed: no partial Header is ever returned
// alongside one. Wrapped errors carry detail; match with errors.Is.
var (
	// ErrTruncated is returned when the buffer is shorter than required at any
	// stage: the 16-byte fixed frame, the declared length, or the minimum
	// address section size for the declared family.
	ErrTruncated = errors.New("ppv2: truncated header")

	// ErrBadSignature is returned when the first 12 bytes do not match the
	// fixed v2 signature exactly.
	ErrBadSignature = errors.New("ppv2: invalid signature")

	// ErrUnsupportedVersion is returned when the version nibble is not 2.
	ErrUnsupportedVersion = errors.New("ppv2: unsupported version")

	// ErrInvalidCommand is returned when the command nibble is not LOCAL or PROXY.
	ErrInvalidCommand = errors.New("ppv2: invalid command")
)
