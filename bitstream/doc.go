// Package bitstream provides the byte-oriented buffered bit reader/writer
// primitives the tsz codec is built on.
//
// Writer accumulates bits MSB-first into a pooled byte buffer and exposes
// WriteBit/WriteBits/Close. Reader mirrors it with ReadBit/ReadBits and a
// non-consuming PeekBits, returning errs.ErrReadPastBuffer once the
// underlying data is exhausted. Wire order is big-endian within each byte.
package bitstream
