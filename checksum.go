package tsz

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of an encoded stream.
//
// Checksum is not part of the wire format; it exists for callers who want
// to detect corruption of an encoded stream at rest, independent of the
// stream's own structural validation (the end-of-stream marker and the
// bitstream.Reader's bounds checks).
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
