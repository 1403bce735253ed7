// Package hosterr defines the fatal startup error kinds the CLI reports
// to standard error before the pacing loop begins: bad input file sizes,
// file I/O failures, and host audio/screen setup failures. Runtime
// errors inside a CPU step are never raised this way; the core absorbs
// them (illegal opcodes decode to a no-op, unimplemented MMIO reads
// return 0) to keep forward progress.
package hosterr

import (
	"fmt"

	"github.com/coremaze/stx2205/internal/mmio"
)

// Kind distinguishes the five startup error conditions.
type Kind int

const (
	InvalidOtpSize Kind = iota
	InvalidFlashSize
	FileIO
	AudioSetup
	ScreenSetup
)

func (k Kind) String() string {
	switch k {
	case InvalidOtpSize:
		return "invalid OTP size"
	case InvalidFlashSize:
		return "invalid flash size"
	case FileIO:
		return "file I/O error"
	case AudioSetup:
		return "audio setup error"
	case ScreenSetup:
		return "screen setup error"
	default:
		return "unknown error"
	}
}

// Error is a fatal startup error. Cause may be nil for the size errors,
// which carry their invalid byte count instead.
type Error struct {
	Kind   Kind
	Actual int
	Path   string
	Cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidOtpSize:
		return fmt.Sprintf("invalid OTP size: got %d bytes, want %d", e.Actual, OtpSize)
	case InvalidFlashSize:
		return fmt.Sprintf("invalid flash size: got %d bytes, want %d", e.Actual, FlashSize)
	case FileIO:
		return fmt.Sprintf("file I/O error on %q: %v", e.Path, e.Cause)
	case AudioSetup:
		return fmt.Sprintf("audio setup error: %v", e.Cause)
	case ScreenSetup:
		return fmt.Sprintf("screen setup error: %v", e.Cause)
	default:
		return "unknown startup error"
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind, so callers
// can write errors.Is(err, hosterr.NewInvalidOtpSize(0)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// OtpSize and FlashSize are the fixed input sizes the CLI validates
// against before constructing the machine.
const (
	OtpSize   = mmio.OtpSize
	FlashSize = mmio.FlashSize
)

// NewInvalidOtpSize reports an OTP image of the wrong size.
func NewInvalidOtpSize(actual int) *Error {
	return &Error{Kind: InvalidOtpSize, Actual: actual}
}

// NewInvalidFlashSize reports a flash image of the wrong size.
func NewInvalidFlashSize(actual int) *Error {
	return &Error{Kind: InvalidFlashSize, Actual: actual}
}

// NewFileIO wraps a file read/write failure on the given path.
func NewFileIO(path string, cause error) *Error {
	return &Error{Kind: FileIO, Path: path, Cause: cause}
}

// NewAudioSetup wraps a host audio sink initialization failure.
func NewAudioSetup(cause error) *Error {
	return &Error{Kind: AudioSetup, Cause: cause}
}

// NewScreenSetup wraps a host screen initialization failure.
func NewScreenSetup(cause error) *Error {
	return &Error{Kind: ScreenSetup, Cause: cause}
}
