package tinf

import (
	"errors"
	"fmt"
)

// ErrDataError is returned, wrapped with additional context, whenever the
// compressed input violates the DEFLATE, gzip or zlib format. Callers that
// only care about the coarse failure category should test with
// errors.Is(err, tinf.ErrDataError).
var ErrDataError = errors.New("tinf: data error")

// ErrBufError is returned, wrapped with additional context, when the input
// is well-formed so far but the destination buffer is too small to hold
// the next literal or match copy.
var ErrBufError = errors.New("tinf: output buffer too small")

// dataErrorf wraps ErrDataError with a formatted, situation-specific
// message, the way andybalholm/brotli's reader.go wraps its own sentinel
// errors with decodeError.
func dataErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataError, fmt.Sprintf(format, args...))
}

func bufErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBufError, fmt.Sprintf(format, args...))
}

func isBufError(err error) bool {
	return errors.Is(err, ErrBufError)
}

// assert panics if cond is false. It guards invariants that earlier
// validation already established (e.g. a Huffman code never exceeding 15
// bits once its tree has passed buildTree); tripping it is a bug in this
// package, not malformed input, so it must never be confused with
// ErrDataError.
func assert(cond bool, msg string) {
	if !cond {
		panic("tinf: assertion failed: " + msg)
	}
}
