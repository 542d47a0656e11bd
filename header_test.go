package ppv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_UnspecProtocolAddrs(t *testing.T) {
	// INET with an unspecified transport still decodes addresses and ports,
	// but Source/Dest cannot pick a net.Addr type for them.
	buf := validTCPv4()
	buf[13] = 0x10 // INET, UNSPEC

	h, err := Decode(buf)
	require.NoError(t, err)

	assert.True(t, h.HasAddrs())
	assert.Equal(t, uint16(1234), h.SourcePort)
	assert.Nil(t, h.Source())
	assert.Nil(t, h.Dest())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "LOCAL", CommandLocal.String())
	assert.Equal(t, "PROXY", CommandProxy.String())

	assert.Equal(t, "unspec", AddrFamilyUnspec.String())
	assert.Equal(t, "inet", AddrFamilyInet.String())
	assert.Equal(t, "inet6", AddrFamilyInet6.String())
	assert.Equal(t, "unix", AddrFamilyUnix.String())
	assert.Equal(t, "unknown(0x7)", AddrFamily(0x7).String())

	assert.Equal(t, "unspec", ProtoUnspec.String())
	assert.Equal(t, "stream", ProtoStream.String())
	assert.Equal(t, "dgram", ProtoDGram.String())
	assert.Equal(t, "unknown(0xe)", Proto(0xE).String())
}
