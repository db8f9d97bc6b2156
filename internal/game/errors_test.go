package game

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorRetryable(t *testing.T) {
	assert.True(t, ErrGuessTooShort.Retryable())
	assert.True(t, ErrGuessTooLong.Retryable())
	assert.True(t, ErrInvalidCommand.Retryable())
	assert.False(t, IOError(io.ErrUnexpectedEOF).Retryable())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "guess too short, guesses must be 5 letters.", ErrGuessTooShort.Error())
	assert.Equal(t, "guess too long, guesses must be 5 letters.", ErrGuessTooLong.Error())
	assert.Equal(t, "unknown command. use /help to list all available commands", ErrInvalidCommand.Error())
	assert.Contains(t, IOError(io.ErrClosedPipe).Error(), "io error")
}

func TestIOErrorUnwraps(t *testing.T) {
	cause := errors.New("tty gone")
	assert.ErrorIs(t, IOError(cause), cause)
}
