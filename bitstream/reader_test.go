package bitstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mebo-project/tsz/errs"
)

func TestReader_ReadBit_MSBFirst(t *testing.T) {
	r := NewReader([]byte{0b10100001})
	want := []Bit{One, Zero, One, Zero, Zero, Zero, Zero, One}
	for i, exp := range want {
		b, err := r.ReadBit()
		require.NoErrorf(t, err, "bit %d", i)
		require.Equalf(t, exp, b, "bit %d", i)
	}

	_, err := r.ReadBit()
	require.ErrorIs(t, err, errs.ErrReadPastBuffer)
}

func TestReader_ReadBits_RoundTripsWriter(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x1A2B, 16)
	w.WriteBits(0x3, 2)
	w.WriteBits(0x1FFFFFFFFF, 37)
	data := w.Close()

	r := NewReader(data)
	v1, err := r.ReadBits(16)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1A2B), v1)

	v2, err := r.ReadBits(2)
	require.NoError(t, err)
	require.Equal(t, uint64(0x3), v2)

	v3, err := r.ReadBits(37)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1FFFFFFFFF), v3)
}

func TestReader_PeekBits_DoesNotConsume(t *testing.T) {
	r := NewReader([]byte{0b11010000})
	peeked, err := r.PeekBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b110), peeked)

	read, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, peeked, read)
}

func TestReader_ReadBits_PastEndOfBuffer(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadBits(9)
	require.ErrorIs(t, err, errs.ErrReadPastBuffer)
}

func TestReader_ReadBits_Zero(t *testing.T) {
	r := NewReader(nil)
	v, err := r.ReadBits(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
}
