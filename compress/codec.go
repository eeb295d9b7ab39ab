package compress

import "fmt"

// Compressor compresses a closed tsz stream for archival or transport.
type Compressor interface {
	// Compress compresses data and returns the compressed result. The
	// returned slice is owned by the caller; data is not modified. Every
	// built-in codec except NoOpCompressor returns a newly allocated slice;
	// NoOpCompressor returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original result. The
	// returned slice is owned by the caller; as with Compress, only
	// NoOpCompressor returns data itself rather than a new slice.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies one of the built-in archival compressors.
type Algorithm uint8

const (
	None Algorithm = iota
	S2
	LZ4
	Zstd
)

// String returns the human-readable name of a.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// NewCodec returns the built-in Codec for algorithm.
func NewCodec(algorithm Algorithm) (Codec, error) {
	switch algorithm {
	case None:
		return NewNoOpCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("compress: unsupported algorithm: %s", algorithm)
	}
}
