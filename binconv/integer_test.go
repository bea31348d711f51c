package binconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToUint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		e     Endianness
		want  uint64
	}{
		{name: "single byte", input: []byte{0xff}, e: BigEndian, want: 255},
		{name: "uint16 big", input: []byte{0x0a, 0x0a}, e: BigEndian, want: 2570},
		{name: "uint16 little", input: []byte{0x0a, 0x0a}, e: LittleEndian, want: 2570},
		{name: "uint32 little", input: []byte{0x2c, 0x01, 0x00, 0x00}, e: LittleEndian, want: 300},
		{name: "uint32 big", input: []byte{0x2c, 0x01, 0x00, 0x00}, e: BigEndian, want: 0x2c010000},
		{name: "uint64 max", input: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, e: BigEndian, want: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BytesToUint(tt.input, tt.e))
		})
	}
}

func TestBytesToInt_SignExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		e     Endianness
		want  int64
	}{
		{name: "positive int8", input: []byte{0x7f}, e: BigEndian, want: 127},
		{name: "negative int8", input: []byte{0x80}, e: BigEndian, want: -128},
		{name: "minus one int16", input: []byte{0xff, 0xff}, e: BigEndian, want: -1},
		{name: "negative int32 little", input: []byte{0xd4, 0xfe, 0xff, 0xff}, e: LittleEndian, want: -300},
		{name: "int64 min", input: []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, e: BigEndian, want: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BytesToInt(tt.input, tt.e))
		})
	}
}

func TestUintToBytes(t *testing.T) {
	t.Parallel()

	b, err := UintToBytes(2570, 2, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x0a}, b)

	b, err = UintToBytes(300, 4, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2c, 0x01, 0x00, 0x00}, b)

	b, err = UintToBytes(math.MaxUint64, 8, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), BytesToUint(b, LittleEndian))
}

func TestUintToBytes_Overflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value uint64
		width int
	}{
		{name: "256 into one byte", value: 256, width: 1},
		{name: "65536 into two bytes", value: 65536, width: 2},
		{name: "width zero", value: 0, width: 0},
		{name: "width too large", value: 0, width: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UintToBytes(tt.value, tt.width, BigEndian)
			assert.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestIntToBytes(t *testing.T) {
	t.Parallel()

	b, err := IntToBytes(-300, 4, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xd4, 0xfe, 0xff, 0xff}, b)
	assert.Equal(t, int64(-300), BytesToInt(b, LittleEndian))

	b, err = IntToBytes(-128, 1, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, b)

	b, err = IntToBytes(math.MinInt64, 8, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), BytesToInt(b, BigEndian))
}

func TestIntToBytes_Overflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int64
		width int
	}{
		{name: "128 into signed byte", value: 128, width: 1},
		{name: "-129 into signed byte", value: -129, width: 1},
		{name: "32768 into signed word", value: 32768, width: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IntToBytes(tt.value, tt.width, BigEndian)
			assert.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestSwapEndianness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "four bytes", input: "0f512332", want: "3223510f"},
		{name: "six bytes", input: "12345abcdeff", want: "ffdebc5a3412"},
		{name: "two bytes", input: "f135", want: "35f1"},
		{name: "single byte", input: "ab", want: "ab"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mustHex(t, tt.input)
			assert.Equal(t, tt.want, BytesToHex(SwapEndianness(in)))
			// Involution: swapping twice restores the original.
			assert.Equal(t, tt.input, BytesToHex(SwapEndianness(SwapEndianness(in))))
			// Input untouched.
			assert.Equal(t, tt.input, BytesToHex(in))
		})
	}
}

func TestExtractBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		start  uint
		length uint
		want   uint64
	}{
		{name: "three bits across nibbles", input: "0552", start: 7, length: 3, want: 0x2},
		{name: "high byte", input: "9ff2", start: 8, length: 8, want: 0x9f},
		{name: "sixteen bits unaligned", input: "0f521236", start: 12, length: 16, want: 0xf521},
		{name: "low bit", input: "01", start: 0, length: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBits(mustHex(t, tt.input), tt.start, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractBits_OutOfRange(t *testing.T) {
	t.Parallel()

	_, err := ExtractBits([]byte{0xff}, 4, 8)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ExtractBits([]byte{0xff}, 0, 0)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ExtractBits(make([]byte, 16), 0, 65)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestLittleEndianHexWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3412", Uint16LEHex(0x1234))
	assert.Equal(t, "ff00", Uint16LEHex(0x00ff))

	h, err := UintLEHex(300, 4)
	require.NoError(t, err)
	assert.Equal(t, "2c010000", h)

	_, err = UintLEHex(256, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestParseEndianness(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"little", "le"} {
		e, err := ParseEndianness(s)
		require.NoError(t, err)
		assert.Equal(t, LittleEndian, e)
	}
	for _, s := range []string{"big", "be"} {
		e, err := ParseEndianness(s)
		require.NoError(t, err)
		assert.Equal(t, BigEndian, e)
	}

	_, err := ParseEndianness("middle")
	assert.Error(t, err)
}
