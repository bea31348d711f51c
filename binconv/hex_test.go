package binconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{name: "empty", input: "", want: []byte{}},
		{name: "single byte", input: "ff", want: []byte{0xff}},
		{name: "lowercase", input: "0a0aff2c010000", want: []byte{0x0a, 0x0a, 0xff, 0x2c, 0x01, 0x00, 0x00}},
		{name: "uppercase", input: "0A0AFF2C010000", want: []byte{0x0a, 0x0a, 0xff, 0x2c, 0x01, 0x00, 0x00}},
		{name: "mixed case", input: "DeadBeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToBytes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToBytes_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "odd length", input: "abc"},
		{name: "single character", input: "f"},
		{name: "non-hex character", input: "0g"},
		{name: "separator", input: "0a:0b"},
		{name: "prefix", input: "0xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HexToBytes(tt.input)
			assert.ErrorIs(t, err, ErrInvalidHex)
		})
	}
}

func TestBytesToHex_Canonical(t *testing.T) {
	t.Parallel()

	// Output is always lowercase and exactly two characters per byte.
	assert.Equal(t, "0a0aff2c010000", BytesToHex([]byte{0x0a, 0x0a, 0xff, 0x2c, 0x01, 0x00, 0x00}))
	assert.Equal(t, "00", BytesToHex([]byte{0}))
	assert.Equal(t, "", BytesToHex(nil))
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	// bytes -> hex -> bytes is the identity.
	for _, b := range [][]byte{
		{},
		{0x00},
		{0xff, 0x00, 0x80, 0x7f},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	} {
		got, err := HexToBytes(BytesToHex(b))
		require.NoError(t, err)
		assert.Equal(t, append([]byte{}, b...), got)
	}

	// hex -> bytes -> hex is the identity after case normalization.
	for _, h := range []string{"", "00", "deadbeef", "0A0AFF2C010000"} {
		b, err := HexToBytes(h)
		require.NoError(t, err)
		assert.Equal(t, len(h), len(BytesToHex(b)))
		assert.Equal(t, BytesToHex(b), BytesToHex(mustHex(t, BytesToHex(b))))
	}
}

func TestByteAt(t *testing.T) {
	t.Parallel()

	got, err := ByteAt("0a0aff2c010000", 2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), got)

	_, err = ByteAt("0a0b", 2)
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = ByteAt("0a0b", -1)
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := HexToBytes(s)
	require.NoError(t, err)
	return b
}
