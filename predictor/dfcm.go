package predictor

import (
	"fmt"

	"github.com/mebo-project/tsz/errs"
)

// DFCM implements the Differential Finite Context Method predictor: like
// FCM, but the table stores differences between consecutive values rather
// than the values themselves.
type DFCM struct {
	table     []uint64
	lastHash  uint64
	lastValue uint64
	mask      uint64
}

var _ Predictor = (*DFCM)(nil)

// NewDFCM creates a DFCM predictor with the given table size, which must be
// a power of two.
func NewDFCM(size int) (*DFCM, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidTableSize, size)
	}

	return &DFCM{
		table: make([]uint64, size),
		mask:  uint64(size - 1),
	}, nil
}

// PredictNext returns the table's stored difference added to the last
// observed value. Arithmetic wraps modulo 2^64.
func (p *DFCM) PredictNext() uint64 {
	return p.table[p.lastHash] + p.lastValue
}

// Update computes the difference between value and the last observed
// value, stores it, advances the rolling hash from that difference, and
// records value as the new last-observed value.
func (p *DFCM) Update(value uint64) {
	diff := value - p.lastValue
	p.table[p.lastHash] = diff
	p.lastHash = ((p.lastHash << 5) ^ (diff >> 50)) & p.mask
	p.lastValue = value
}
