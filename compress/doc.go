// Package compress provides optional archival compression for closed tsz
// streams.
//
// A tsz stream's bit layout is fixed and byte-exact by design; these codecs
// never touch that layout. They operate purely on the already-closed output
// of Encoder.Close, for callers that want to shrink cold/archived streams
// further before writing them to long-term storage or shipping them over a
// constrained link.
//
// # Supported Algorithms
//
//   - None: passthrough, for testing and baselining
//   - S2: fast, moderate ratio, good default for hot archival paths
//   - LZ4: very fast decompression, good for read-heavy archives
//   - Zstd: best ratio, for cold storage where CPU is not the bottleneck
//
// All codecs implement Codec and are safe for concurrent use.
package compress
