package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, codec Codec, data []byte) {
	t.Helper()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 17)
	}

	codecs := map[string]Codec{
		"none": NewNoOpCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
		"zstd": NewZstdCompressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, codec, data)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	codecs := []Codec{NewS2Compressor(), NewLZ4Compressor(), NewZstdCompressor()}
	for _, codec := range codecs {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestNewCodec(t *testing.T) {
	for _, alg := range []Algorithm{None, S2, LZ4, Zstd} {
		codec, err := NewCodec(alg)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := NewCodec(Algorithm(99))
	require.Error(t, err)
}
