package compress

// ZstdCompressor compresses with klauspost/compress/zstd.
//
// Best compression ratio of the built-in codecs, at higher CPU cost.
// Suited to cold storage of archived streams rather than hot paths.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
