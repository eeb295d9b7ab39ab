package tsz

import "github.com/mebo-project/tsz/bitstream"

// Bit is a single binary digit, either Zero or One. It is an alias for
// bitstream.Bit so callers never need to import the bitstream package
// directly for this type.
type Bit = bitstream.Bit

const (
	Zero = bitstream.Zero
	One  = bitstream.One
)

// DataPoint is an immutable (time, value) pair. Time is a Unix epoch
// second; Value is an opaque 64-bit signed integer the caller may
// reinterpret as a float64 bit pattern (math.Float64bits/frombits) using
// identical semantics on both the encode and decode side.
type DataPoint struct {
	Time  uint64
	Value int64
}

// NewDataPoint creates a DataPoint from a time and value.
func NewDataPoint(time uint64, value int64) DataPoint {
	return DataPoint{Time: time, Value: value}
}
