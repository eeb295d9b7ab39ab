package tsz

import "github.com/mebo-project/tsz/predictor"

// config holds the shared Encoder/Decoder construction options.
type config struct {
	predictor predictor.Predictor
}

// Option configures an Encoder or Decoder at construction time.
type Option func(*config)

// WithPredictor overrides the default LastValue predictor. The encoder and
// decoder for a given stream must be constructed with predictors in
// identical initial state — typically two fresh instances built the same
// way, e.g. two calls to predictor.NewFCM(1024).
func WithPredictor(p predictor.Predictor) Option {
	return func(c *config) {
		c.predictor = p
	}
}

func newConfig(opts []Option) config {
	c := config{predictor: predictor.NewLastValue()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
