package predictor

// LastValue predicts that the next value equals the most recently observed
// value. It is the simplest predictor in the package and the default one.
type LastValue struct {
	value uint64
}

var _ Predictor = (*LastValue)(nil)

// NewLastValue creates a LastValue predictor with initial state 0.
func NewLastValue() *LastValue {
	return &LastValue{}
}

// PredictNext returns the last observed value (0 before the first Update).
func (p *LastValue) PredictNext() uint64 {
	return p.value
}

// Update overwrites the stored value.
func (p *LastValue) Update(value uint64) {
	p.value = value
}
