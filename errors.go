package lz8s

import "errors"

// Sentinel errors returned by package lz8s. Callers should use errors.Is to
// test for a specific condition rather than comparing formatted messages.
var (
	// ErrMaxLenOutOfRange is returned when MaxMLen or MaxLLen falls outside [1, 32895].
	ErrMaxLenOutOfRange = errors.New("lz8s: max length out of range [1, 32895]")
	// ErrBitsMOffOutOfRange is returned when BitsMOff falls outside [0, 16].
	ErrBitsMOffOutOfRange = errors.New("lz8s: bits_moff out of range [0, 16]")
	// ErrOffsetRelOutOfRange is returned when OffsetRel is set but not in [0, 2^bits_moff).
	ErrOffsetRelOutOfRange = errors.New("lz8s: offset_rel out of range for the configured offset width")
	// ErrAbsoluteRequiresByteWidth is returned when OffsetRel is set but bits_moff is neither 8 nor 16.
	ErrAbsoluteRequiresByteWidth = errors.New("lz8s: absolute offset base requires bits_moff of 8 or 16")
	// ErrMinMLenInvalid is returned when MinMLen is less than 1.
	ErrMinMLenInvalid = errors.New("lz8s: min_mlen must be >= 1")

	// ErrInputOverrun is returned by Encode when the input exceeds MaxInputSize.
	ErrInputOverrun = errors.New("lz8s: input overrun")
	// ErrLookBehindUnderrun names a match that references data before the output
	// start. No function in this package returns it: Decode does not check for
	// this case.
	ErrLookBehindUnderrun = errors.New("lz8s: lookbehind underrun")
	// ErrOutputOverrun names a record that would write past an output bound. No
	// function in this package returns it: Decode takes no output bound.
	ErrOutputOverrun = errors.New("lz8s: output overrun")
	// ErrUnexpectedEOF is returned when the stream is truncated inside a field or a literal payload.
	ErrUnexpectedEOF = errors.New("lz8s: unexpected end of input")

	// ErrInternal marks a codec invariant violation (a bug, not a data problem).
	ErrInternal = errors.New("lz8s: internal invariant violation")
)
