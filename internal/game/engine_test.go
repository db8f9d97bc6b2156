package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenarios(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		guess  string
		want   string
	}{
		{"mixed presents", "fudge", "reads", "⬛🟨⬛🟨⬛"},
		{"trailing hits", "fudge", "lodge", "⬛⬛🟩🟩🟩"},
		{"exact match", "fudge", "fudge", "🟩🟩🟩🟩🟩"},
		{"all absent", "fudge", "pilot", "⬛⬛⬛⬛⬛"},
		{"oversized guess", "fudge", "lodging", "⬛⬛🟩🟩⬛❌❌"},
		{"undersized guess", "fudge", "fun", "🟩🟩⬛"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.secret, tc.guess).String())
		})
	}
}

// Repeated guess letters score independently: the single 's' in position 0
// is a hit, and the 'a' in "space" still shows present against "sassy"
// even though "sassy" spends its 'a' nowhere else.
func TestCompareRepeatedLetters(t *testing.T) {
	assert.Equal(t, "🟩⬛🟨⬛⬛", Compare("sassy", "space").String())

	// both misplaced 'u' tiles of "usual" count as present against the
	// single 'u' in "fudge"
	got := Compare("fudge", "usual")
	assert.Equal(t, OutcomePresent, got[0])
	assert.Equal(t, OutcomePresent, got[2])
}

func TestCompareIsPure(t *testing.T) {
	first := Compare("fudge", "reads")
	second := Compare("fudge", "reads")
	assert.Equal(t, first, second)
}

func TestComparePositionProperties(t *testing.T) {
	secret, guess := "fudge", "gourd"
	res := Compare(secret, guess)
	require.Len(t, res, len(guess))
	for i := range guess {
		switch {
		case guess[i] == secret[i]:
			assert.Equal(t, OutcomeCorrect, res[i], "position %d", i)
		default:
			assert.NotEqual(t, OutcomeCorrect, res[i], "position %d", i)
		}
	}
}

func TestCompareBoundsBeyondSecret(t *testing.T) {
	res := Compare("fudge", "fudgesicle")
	require.Len(t, res, 10)
	for i := 5; i < 10; i++ {
		assert.Equal(t, OutcomeBounds, res[i], "position %d", i)
	}
}

func TestResultWinning(t *testing.T) {
	assert.True(t, Result{OutcomeCorrect, OutcomeCorrect}.Winning())
	assert.False(t, Result{OutcomeCorrect, OutcomePresent}.Winning())
	assert.False(t, Result{}.Winning())
}

// Gameplay uses the strict length policy: a mismatched guess is rejected
// before any comparison, and the rejection leaves no trace on the session.
func TestGuessStrictLengthPolicy(t *testing.T) {
	s := New("fudge")

	_, err := s.Guess("lol")
	assert.ErrorIs(t, err, ErrGuessTooShort)

	_, err = s.Guess("lodging")
	assert.ErrorIs(t, err, ErrGuessTooLong)

	assert.Empty(t, s.Guesses)
	assert.Len(t, s.UnusedLetters(), 26)
	assert.Equal(t, StatePlaying, s.State)
}

func TestGuessWinTransition(t *testing.T) {
	s := New("fudge")

	res, err := s.Guess("lodge")
	require.NoError(t, err)
	assert.False(t, res.Winning())
	assert.Equal(t, StatePlaying, s.State)

	res, err = s.Guess("fudge")
	require.NoError(t, err)
	assert.True(t, res.Winning())
	assert.Equal(t, StateWon, s.State)

	_, err = s.Guess("fudge")
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestUnusedLetters(t *testing.T) {
	s := New("fudge")

	_, err := s.Guess("reads")
	require.NoError(t, err)

	unused := s.UnusedLetters()
	assert.NotContains(t, unused, "r")
	assert.NotContains(t, unused, "e")
	assert.NotContains(t, unused, "a")
	assert.NotContains(t, unused, "d")
	assert.NotContains(t, unused, "s")
	assert.Contains(t, unused, "f")
	assert.Len(t, unused, 21)

	// letters from an incorrect guess still count as used
	_, err = s.Guess("pilot")
	require.NoError(t, err)
	assert.NotContains(t, s.UnusedLetters(), "p")
}

func TestTerminate(t *testing.T) {
	s := New("fudge")
	s.Terminate()
	assert.Equal(t, StateTerminated, s.State)

	// won stays won
	w := New("fudge")
	_, err := w.Guess("fudge")
	require.NoError(t, err)
	w.Terminate()
	assert.Equal(t, StateWon, w.State)
}

func TestSessionIDs(t *testing.T) {
	a, b := New("fudge"), New("fudge")
	assert.Len(t, a.ID, 16)
	assert.NotEqual(t, a.ID, b.ID)
}
