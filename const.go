package tsz

// endMarker is the 36-bit pattern 1111 followed by 32 zero bits, used to
// signal end-of-stream. It is unambiguous: a genuine 32-bit DoD of 0 is
// always encoded with the single-bit prefix 0, never with the 1111 escape
// prefix, so the escape-prefix-plus-all-zero-payload pattern can only mean
// end-of-stream.
const (
	endMarker    uint64 = 0b1111_00000000_00000000_00000000_00000000
	endMarkerLen        = 36

	firstDeltaBits = 14
	maxFirstDelta  = 1 << firstDeltaBits

	dodBucket1Bits = 7  // dod in [-64, 63]
	dodBucket2Bits = 9  // dod in [-256, 255]
	dodBucket3Bits = 12 // dod in [-2048, 2047]
	dodBucket4Bits = 32 // escape bucket; also doubles as the end-of-stream payload width

	leadingZerosSentinel = 64 // never written to the wire; forces a new window on the first non-zero XOR
	leadingZerosBits     = 6  // 0..63 fits in 6 bits
)
