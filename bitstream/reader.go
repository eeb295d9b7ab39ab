package bitstream

import (
	"encoding/binary"

	"github.com/mebo-project/tsz/errs"
)

// Reader reads bits MSB-first from a byte slice produced by a Writer.
//
// Reader is not safe for concurrent use; a Decoder owns exactly one Reader
// for the lifetime of a single stream.
type Reader struct {
	data     []byte
	bytePos  int
	bitBuf   uint64
	bitCount int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit, or returns errs.ErrReadPastBuffer if the
// stream is exhausted.
func (r *Reader) ReadBit() (Bit, error) {
	if r.bitCount == 0 {
		if !r.fillBuffer() {
			return Zero, errs.ErrReadPastBuffer
		}
	}

	bit := Bit(r.bitBuf >> 63)
	r.bitBuf <<= 1
	r.bitCount--

	return bit, nil
}

// ReadBits reads n bits (n in [0, 64]) into the low bits of the result,
// zero-extended, MSB-first. Returns errs.ErrReadPastBuffer if the stream
// does not contain n more bits.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}

	if n <= r.bitCount {
		shift := 64 - n
		result := r.bitBuf >> uint(shift)
		r.bitBuf <<= uint(n)
		r.bitCount -= n

		return result, nil
	}

	var result uint64
	remaining := n
	first := true

	for remaining > 0 {
		if r.bitCount == 0 {
			if !r.fillBuffer() {
				return 0, errs.ErrReadPastBuffer
			}
		}

		take := remaining
		if take > r.bitCount {
			take = r.bitCount
		}

		shift := 64 - take
		chunk := r.bitBuf >> uint(shift)

		if first {
			result = chunk
			first = false
		} else {
			result = (result << uint(take)) | chunk
		}

		r.bitBuf <<= uint(take)
		r.bitCount -= take
		remaining -= take
	}

	return result, nil
}

// PeekBits returns the next n bits without consuming them.
func (r *Reader) PeekBits(n int) (uint64, error) {
	saved := *r
	val, err := r.ReadBits(n)
	*r = saved

	return val, err
}

// fillBuffer refills the 64-bit accumulator from the byte slice, left-aligned.
func (r *Reader) fillBuffer() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	available := len(r.data) - r.bytePos
	toRead := 8
	if toRead > available {
		toRead = available
	}

	if toRead == 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	var buf uint64
	for i := 0; i < toRead; i++ {
		buf = (buf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	buf <<= uint((8 - toRead) * 8)

	r.bitBuf = buf
	r.bitCount = toRead * 8

	return true
}
