package tsz

import (
	"fmt"
	"math/bits"

	"github.com/mebo-project/tsz/bitstream"
	"github.com/mebo-project/tsz/errs"
	"github.com/mebo-project/tsz/predictor"
)

// Encoder compresses a monotonically increasing sequence of DataPoints into
// a compact bitstream using delta-of-delta timestamp coding and
// XOR-with-prediction value coding.
//
// An Encoder exclusively owns its bitstream.Writer and Predictor; it is not
// safe for concurrent use. Construction writes the 64-bit stream header
// immediately.
type Encoder struct {
	time      uint64 // last emitted timestamp
	delta     uint64 // last emitted delta = time - prev_time
	predictor predictor.Predictor

	leadingZeros int // leading-zero count of the last XOR; sentinel leadingZerosSentinel until the first window opens

	first  bool // true until the first record has been encoded
	closed bool

	w *bitstream.Writer
}

// NewEncoder creates an Encoder whose stream starts at startTime (Unix
// epoch seconds) and writes its encoded bytes to an internal bitstream.Writer.
// The 64-bit header is written immediately.
func NewEncoder(startTime uint64, opts ...Option) *Encoder {
	cfg := newConfig(opts)

	e := &Encoder{
		time:         startTime,
		predictor:    cfg.predictor,
		leadingZeros: leadingZerosSentinel,
		first:        true,
		w:            bitstream.NewWriter(),
	}
	e.w.WriteBits(startTime, 64)

	return e
}

// Encode appends dp to the stream.
//
// The first call to Encode validates that dp.Time - startTime fits the
// 14-bit first-delta field, returning an error rather than silently
// truncating it. All subsequent calls are infallible in practice (the
// in-memory writer cannot fail) but Encode keeps returning error for a
// uniform API and for the closed-encoder guard.
func (e *Encoder) Encode(dp DataPoint) error {
	if e.closed {
		return errs.ErrEncoderClosed
	}

	valueBits := uint64(dp.Value)

	if e.first {
		return e.encodeFirst(dp.Time, valueBits)
	}

	e.encodeNextTimestamp(dp.Time)
	e.encodeNextValue(valueBits)

	return nil
}

func (e *Encoder) encodeFirst(time uint64, valueBits uint64) error {
	delta := time - e.time
	if delta >= maxFirstDelta {
		return fmt.Errorf("%w: start=%d, first=%d", errs.ErrFirstDeltaOverflow, e.time, time)
	}

	e.delta = delta
	e.time = time
	e.predictor.Update(valueBits)

	// Control bit 0 disambiguates a non-empty stream from the end-of-stream
	// marker, whose first bit is 1.
	e.w.WriteBit(Zero)
	e.w.WriteBits(delta, firstDeltaBits)
	e.w.WriteBits(valueBits, 64)

	e.first = false

	return nil
}

func (e *Encoder) encodeNextTimestamp(time uint64) {
	delta := time - e.time
	dod := int32(delta - e.delta) // signed, 32-bit truncation

	switch {
	case dod == 0:
		e.w.WriteBit(Zero)
	case dod >= -64 && dod <= 63:
		e.w.WriteBits(0b10, 2)
		e.w.WriteBits(uint64(uint32(dod)), dodBucket1Bits)
	case dod >= -256 && dod <= 255:
		e.w.WriteBits(0b110, 3)
		e.w.WriteBits(uint64(uint32(dod)), dodBucket2Bits)
	case dod >= -2048 && dod <= 2047:
		e.w.WriteBits(0b1110, 4)
		e.w.WriteBits(uint64(uint32(dod)), dodBucket3Bits)
	default:
		e.w.WriteBits(0b1111, 4)
		e.w.WriteBits(uint64(uint32(dod)), dodBucket4Bits)
	}

	e.delta = delta
	e.time = time
}

func (e *Encoder) encodeNextValue(valueBits uint64) {
	pred := e.predictor.PredictNext()
	xor := valueBits ^ pred
	e.predictor.Update(valueBits)

	if xor == 0 {
		e.w.WriteBit(Zero)
		return
	}

	e.w.WriteBit(One)

	leading := bits.LeadingZeros64(xor)
	if leading == e.leadingZeros {
		// Reuse the previous window: same leading-zero count as last time.
		e.w.WriteBit(Zero)
		e.w.WriteBits(xor, 64-e.leadingZeros)

		return
	}

	e.w.WriteBit(One)
	significant := 64 - leading
	e.w.WriteBits(uint64(leading), leadingZerosBits)
	e.w.WriteBits(xor, significant)
	e.leadingZeros = leading
}

// Close writes the end-of-stream marker, flushes the bitstream, and returns
// the finished bytes. Close consumes the Encoder: further calls to Encode
// return errs.ErrEncoderClosed, and a second call to Close returns nil.
func (e *Encoder) Close() []byte {
	if e.closed {
		return nil
	}

	e.w.WriteBits(endMarker, endMarkerLen)
	e.closed = true

	return e.w.Close()
}
