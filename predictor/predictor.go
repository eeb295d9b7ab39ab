package predictor

// Predictor produces a predicted next value and absorbs observed values to
// update its internal state. Implementations must be deterministic: given
// the same sequence of Update calls, PredictNext must return the same
// sequence of predictions regardless of which side (encoder or decoder) is
// calling it.
type Predictor interface {
	// PredictNext returns the predicted next 64-bit value. It is pure with
	// respect to the current state; it does not mutate the predictor.
	PredictNext() uint64

	// Update absorbs the observed 64-bit value, advancing the predictor's
	// internal state.
	Update(value uint64)
}
