package tsz

import (
	"fmt"

	"github.com/mebo-project/tsz/bitstream"
	"github.com/mebo-project/tsz/errs"
	"github.com/mebo-project/tsz/predictor"
)

// Decoder reverses the transformation performed by Encoder, reading
// DataPoints back out of an encoded stream in order.
//
// A Decoder must be constructed with a predictor in the same initial state
// as the Encoder that produced the stream. Decoder is not safe for
// concurrent use.
type Decoder struct {
	time      uint64
	delta     uint64
	predictor predictor.Predictor

	leadingZeros int
	significant  int // bit-width of the last non-reused XOR window

	first bool
	done  bool // sticky: once EndOfStream is returned, every later Next also returns it

	r *bitstream.Reader
}

// NewDecoder creates a Decoder over data, an encoded stream produced by
// Encoder. NewDecoder reads the 64-bit header immediately.
func NewDecoder(data []byte, opts ...Option) (*Decoder, error) {
	cfg := newConfig(opts)

	r := bitstream.NewReader(data)
	startTime, err := r.ReadBits(64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInitialTimestamp, err)
	}

	return &Decoder{
		time:         startTime,
		predictor:    cfg.predictor,
		leadingZeros: leadingZerosSentinel,
		first:        true,
		r:            r,
	}, nil
}

// Next returns the next DataPoint in the stream. Once the stream is
// exhausted, Next returns errs.ErrEndOfStream on every subsequent call.
func (d *Decoder) Next() (DataPoint, error) {
	if d.done {
		return DataPoint{}, errs.ErrEndOfStream
	}

	if d.first {
		return d.decodeFirst()
	}

	return d.decodeNext()
}

func (d *Decoder) decodeFirst() (DataPoint, error) {
	controlBit, err := d.r.ReadBit()
	if err != nil {
		return DataPoint{}, err
	}

	if controlBit == One {
		// Only the end-of-stream marker starts with a 1 bit at this position.
		if err := d.consumeEndMarkerTail(); err != nil {
			return DataPoint{}, err
		}
		d.done = true
		return DataPoint{}, errs.ErrEndOfStream
	}

	delta, err := d.r.ReadBits(firstDeltaBits)
	if err != nil {
		return DataPoint{}, err
	}

	valueBits, err := d.r.ReadBits(64)
	if err != nil {
		return DataPoint{}, err
	}

	d.delta = delta
	d.time += delta
	d.predictor.Update(valueBits)
	d.first = false

	return DataPoint{Time: d.time, Value: int64(valueBits)}, nil
}

// consumeEndMarkerTail reads the remaining 35 bits of the 36-bit end marker
// (1111 followed by 32 zero bits), having already consumed its leading 1
// bit, and verifies they match the expected "111" + 32 zero bits pattern.
func (d *Decoder) consumeEndMarkerTail() error {
	tail, err := d.r.ReadBits(endMarkerLen - 1)
	if err != nil {
		return err
	}

	const wantTail = uint64(0b111) << dodBucket4Bits
	if tail != wantTail {
		return errs.ErrInvalidEndOfStream
	}

	return nil
}

func (d *Decoder) decodeNext() (DataPoint, error) {
	dod, isEnd, err := d.readDoD()
	if err != nil {
		return DataPoint{}, err
	}
	if isEnd {
		d.done = true
		return DataPoint{}, errs.ErrEndOfStream
	}

	delta := d.delta + uint64(dod)
	d.delta = delta
	d.time += delta

	valueBits, err := d.readValue()
	if err != nil {
		return DataPoint{}, err
	}

	return DataPoint{Time: d.time, Value: int64(valueBits)}, nil
}

// readDoD reads one delta-of-delta field, returning the decoded signed
// value. If the field is the end-of-stream escape (prefix 1111 followed by
// an all-zero 32-bit payload), isEnd is true and dod is meaningless.
func (d *Decoder) readDoD() (dod int64, isEnd bool, err error) {
	b, err := d.r.ReadBit()
	if err != nil {
		return 0, false, err
	}
	if b == Zero {
		return 0, false, nil
	}

	b, err = d.r.ReadBit()
	if err != nil {
		return 0, false, err
	}
	if b == Zero {
		payload, err := d.r.ReadBits(dodBucket1Bits)
		if err != nil {
			return 0, false, err
		}
		return signExtend(payload, dodBucket1Bits), false, nil
	}

	b, err = d.r.ReadBit()
	if err != nil {
		return 0, false, err
	}
	if b == Zero {
		payload, err := d.r.ReadBits(dodBucket2Bits)
		if err != nil {
			return 0, false, err
		}
		return signExtend(payload, dodBucket2Bits), false, nil
	}

	b, err = d.r.ReadBit()
	if err != nil {
		return 0, false, err
	}
	if b == Zero {
		payload, err := d.r.ReadBits(dodBucket3Bits)
		if err != nil {
			return 0, false, err
		}
		return signExtend(payload, dodBucket3Bits), false, nil
	}

	payload, err := d.r.ReadBits(dodBucket4Bits)
	if err != nil {
		return 0, false, err
	}
	if payload == 0 {
		return 0, true, nil
	}

	return signExtend(payload, dodBucket4Bits), false, nil
}

// signExtend sign-extends the low width bits of payload to a full int64,
// treating them as a two's-complement value. The same OR-mask formula
// applies uniformly to every bucket width, including 32.
func signExtend(payload uint64, width int) int64 {
	signBit := uint64(1) << (width - 1)
	if payload&signBit != 0 {
		payload |= ^uint64(0) << width
	}
	return int64(payload)
}

func (d *Decoder) readValue() (uint64, error) {
	pred := d.predictor.PredictNext()

	controlBit, err := d.r.ReadBit()
	if err != nil {
		return 0, err
	}
	if controlBit == Zero {
		d.predictor.Update(pred)
		return pred, nil
	}

	reuseBit, err := d.r.ReadBit()
	if err != nil {
		return 0, err
	}

	if reuseBit == Zero {
		if d.leadingZeros == leadingZerosSentinel {
			return 0, errs.ErrCorruptWindowReuse
		}
		xor, err := d.r.ReadBits(d.significant)
		if err != nil {
			return 0, err
		}
		valueBits := pred ^ xor
		d.predictor.Update(valueBits)
		return valueBits, nil
	}

	leading, err := d.r.ReadBits(leadingZerosBits)
	if err != nil {
		return 0, err
	}
	significant := 64 - int(leading)

	xor, err := d.r.ReadBits(significant)
	if err != nil {
		return 0, err
	}

	d.leadingZeros = int(leading)
	d.significant = significant

	valueBits := pred ^ xor
	d.predictor.Update(valueBits)

	return valueBits, nil
}
