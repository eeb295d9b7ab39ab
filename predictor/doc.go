// Package predictor implements the pluggable next-value predictors used by
// the tsz value codec: LastValue, FCM (finite context method), and DFCM
// (differential FCM).
//
// A Predictor is a small, deterministic, allocation-free-after-construction
// state machine: PredictNext returns the current prediction without
// mutating state, and Update absorbs the observed value. The value codec
// calls both on every record, in the same order, on the encode and decode
// side, so predictor state stays identical on both sides after every
// record, provided the encoder and decoder were constructed with
// predictors in the same initial state.
package predictor
