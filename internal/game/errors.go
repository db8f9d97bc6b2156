// internal/game/errors.go
//
// Typed errors for guess validation and the session loop.
// Each Error carries a Kind; Retryable reports whether the loop may keep
// going after reporting it. Input/output failures wrap their cause and are
// the only non-retryable kind.

package game

import (
	"errors"
	"fmt"
)

// Kind discriminates the error cases the session loop can produce.
type Kind int

const (
	KindGuessTooShort Kind = iota
	KindGuessTooLong
	KindInvalidCommand
	KindIO
)

// Error is the error type shared by the game's front ends.
type Error struct {
	Kind Kind
	Err  error // underlying cause, set for KindIO only
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindGuessTooShort:
		return "guess too short, guesses must be 5 letters."
	case KindGuessTooLong:
		return "guess too long, guesses must be 5 letters."
	case KindInvalidCommand:
		return "unknown command. use /help to list all available commands"
	default:
		return fmt.Sprintf("io error: %v", e.Err)
	}
}

// Unwrap exposes the wrapped cause (nil unless KindIO).
func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the loop should continue after this error.
func (e *Error) Retryable() bool { return e.Kind != KindIO }

// Sentinel values for the cause-free kinds.
var (
	ErrGuessTooShort  = &Error{Kind: KindGuessTooShort}
	ErrGuessTooLong   = &Error{Kind: KindGuessTooLong}
	ErrInvalidCommand = &Error{Kind: KindInvalidCommand}
)

// ErrSessionFinished is returned when a guess reaches a session already in
// a terminal state. The REPL never sees it; the HTTP front end maps it to
// a 400.
var ErrSessionFinished = errors.New("session finished")

// IOError wraps an input/output failure as a non-retryable Error.
func IOError(err error) *Error { return &Error{Kind: KindIO, Err: err} }
