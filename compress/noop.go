package compress

// NoOpCompressor bypasses data without compression.
//
// Useful for testing and for baselining the overhead of the other codecs
// against an uncompressed stream.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged; the result is data itself, not a copy.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged; the result is data itself, not a copy.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
