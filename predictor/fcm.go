package predictor

import (
	"fmt"

	"github.com/mebo-project/tsz/errs"
)

// FCM implements the Finite Context Method predictor: a hash-indexed table
// of previously observed values, keyed by a rolling hash of recent values.
type FCM struct {
	table    []uint64
	lastHash uint64
	mask     uint64
}

var _ Predictor = (*FCM)(nil)

// NewFCM creates an FCM predictor with the given table size, which must be
// a power of two so that size-1 is a valid bit mask for the rolling hash.
func NewFCM(size int) (*FCM, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidTableSize, size)
	}

	return &FCM{
		table: make([]uint64, size),
		mask:  uint64(size - 1),
	}, nil
}

// PredictNext returns the table entry at the current hash index.
func (p *FCM) PredictNext() uint64 {
	return p.table[p.lastHash]
}

// Update stores the observed value at the current hash index, then advances
// the rolling hash.
func (p *FCM) Update(value uint64) {
	p.table[p.lastHash] = value
	p.lastHash = ((p.lastHash << 5) ^ (value >> 50)) & p.mask
}
