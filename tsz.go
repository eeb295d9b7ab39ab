// Package tsz implements the Gorilla/Facebook-style streaming time-series
// compression codec: delta-of-delta timestamp encoding and
// XOR-with-prediction value encoding, with a pluggable prediction strategy
// for the value stream.
//
// # Core Features
//
//   - Delta-of-delta timestamp coding with four variable-length DoD buckets
//   - XOR value coding against a configurable Predictor (LastValue, FCM, DFCM)
//   - A single, unambiguous end-of-stream marker
//   - Optional post-hoc archival compression of a closed stream (package compress)
//
// # Basic Usage
//
// Encoding a series of data points:
//
//	enc := tsz.NewEncoder(startTime)
//	for _, dp := range points {
//	    if err := enc.Encode(dp); err != nil {
//	        // handle first-delta overflow
//	    }
//	}
//	encoded := enc.Close()
//
// Decoding it back:
//
//	dec, err := tsz.NewDecoder(encoded)
//	for {
//	    dp, err := dec.Next()
//	    if errors.Is(err, errs.ErrEndOfStream) {
//	        break
//	    }
//	    // handle dp
//	}
//
// # Predictors
//
// Encoder and Decoder default to predictor.LastValue. Passing
// tsz.WithPredictor to both sides of a stream swaps in predictor.FCM or
// predictor.DFCM for workloads where successive values correlate with a
// recent history rather than just the immediately preceding one; both
// sides must be constructed with predictors in identical initial state.
package tsz
