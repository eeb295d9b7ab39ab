// Package errs defines the sentinel errors shared by the bitstream and tsz
// codec packages.
//
// Callers compare against these with errors.Is; wrapped variants add context
// via fmt.Errorf("%w: ...", ...) the same way the rest of this module does.
package errs

import "errors"

var (
	// ErrEndOfStream signals that a decoder has reached the end-of-stream
	// marker. It is not a failure: once observed, a decoder returns it on
	// every subsequent call.
	ErrEndOfStream = errors.New("tsz: end of stream")

	// ErrInvalidInitialTimestamp is returned when the 64-bit stream header
	// could not be read.
	ErrInvalidInitialTimestamp = errors.New("tsz: invalid initial timestamp")

	// ErrInvalidEndOfStream is returned when the first record's control bit
	// signaled an end-of-stream marker but the remaining 35 bits did not
	// match the expected marker pattern.
	ErrInvalidEndOfStream = errors.New("tsz: invalid end-of-stream marker")

	// ErrCorruptWindowReuse is returned when a value's control bits request
	// reuse of the previous leading-zero window before any window has been
	// established.
	ErrCorruptWindowReuse = errors.New("tsz: window reuse requested before any window was established")

	// ErrFirstDeltaOverflow is returned by Encoder.Encode when the first
	// record's delta does not fit the 14-bit first-delta field.
	ErrFirstDeltaOverflow = errors.New("tsz: first delta does not fit in 14 bits")

	// ErrReadPastBuffer is returned by bitstream.Reader when a read or peek
	// would consume more bits than remain in the underlying buffer.
	ErrReadPastBuffer = errors.New("tsz: read past end of buffer")

	// ErrInvalidTableSize is returned by predictor.NewFCM / predictor.NewDFCM
	// when the requested hash table size is not a power of two.
	ErrInvalidTableSize = errors.New("tsz: predictor table size must be a power of two")

	// ErrEncoderClosed is returned when Encode is called after Close.
	ErrEncoderClosed = errors.New("tsz: encoder already closed")
)
