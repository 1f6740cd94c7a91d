package cli

import (
	"errors"
	"fmt"

	"github.com/cwbudde/iqa/internal/dispatch"
	"github.com/cwbudde/iqa/internal/imgio"
	"github.com/cwbudde/iqa/internal/pixbuf"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitArgumentCount = 1
	ExitUnknownFlag   = 2
	ExitDecodeImage1  = 3
	ExitDecodeImage2  = 4
	ExitInvalidMode   = 5
	ExitShapeMismatch = 6
	ExitFailure       = 1
)

// ArgumentCountError is returned when the number of positional arguments is
// not 2 or 3.
type ArgumentCountError struct {
	Got int
}

func (e *ArgumentCountError) Error() string {
	if e.Got < 2 {
		return "too few arguments"
	}
	return fmt.Sprintf("too many arguments: got %d, want at most 3", e.Got)
}

// UnknownFlagError wraps a flag parsing failure.
type UnknownFlagError struct {
	Err error
}

func (e *UnknownFlagError) Error() string {
	return e.Err.Error()
}

func (e *UnknownFlagError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		argErr    *ArgumentCountError
		flagErr   *UnknownFlagError
		decodeErr *imgio.DecodeError
	)
	switch {
	case errors.As(err, &argErr):
		return ExitArgumentCount
	case errors.As(err, &flagErr):
		return ExitUnknownFlag
	case errors.As(err, &decodeErr):
		if decodeErr.Index == 2 {
			return ExitDecodeImage2
		}
		return ExitDecodeImage1
	case errors.Is(err, dispatch.ErrInvalidMode):
		return ExitInvalidMode
	case errors.Is(err, pixbuf.ErrShapeMismatch):
		return ExitShapeMismatch
	default:
		return ExitFailure
	}
}
