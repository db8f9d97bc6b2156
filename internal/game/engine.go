// internal/game/engine.go
//
// Core engine for a single Wordler session.
// Responsibilities:
//   - Create new sessions with the 26 used-letter flags initialized.
//   - Enforce the strict length policy (guess length == secret length).
//   - Classify guesses letter by letter via Compare.
//   - Track state transitions: playing → won / terminated.
//
// Notes:
//   - Compare classifies every position independently. A repeated guess
//     letter can be marked present more than once even when the secret
//     holds a single instance of it; the game rules want exactly that.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// New constructs a session around the given secret word.
func New(word string) *Session {
	used := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		used[r] = false
	}
	return &Session{
		ID:    randomID(),
		Word:  word,
		State: StatePlaying,
		used:  used,
	}
}

// Compare classifies guess against secret, one outcome per guess letter.
//
// Per position i:
//   - beyond the secret's length        → OutcomeBounds
//   - guess[i] equals secret[i]         → OutcomeCorrect
//   - secret contains guess[i] anywhere → OutcomePresent
//   - otherwise                        → OutcomeAbsent
//
// Pure function: neither input is mutated and equal inputs always give
// equal results. Secret positions past the guess's length produce nothing.
func Compare(secret, guess string) Result {
	secretRunes := []rune(secret)
	res := make(Result, 0, utf8.RuneCountInString(guess))
	for i, c := range []rune(guess) {
		switch {
		case i >= len(secretRunes):
			res = append(res, OutcomeBounds)
		case c == secretRunes[i]:
			res = append(res, OutcomeCorrect)
		case strings.ContainsRune(secret, c):
			res = append(res, OutcomePresent)
		default:
			res = append(res, OutcomeAbsent)
		}
	}
	return res
}

// Guess validates and scores a guess, mutating the session state.
//
// Length policy is strict: the guess must have exactly as many letters as
// the secret; otherwise ErrGuessTooShort/ErrGuessTooLong is returned and
// nothing is compared or recorded. Both length errors are retryable.
//
// Every letter of a length-valid guess is marked used, whatever its
// outcome. An all-correct result transitions the session to StateWon.
func (s *Session) Guess(guess string) (Result, error) {
	if s.State != StatePlaying {
		return nil, ErrSessionFinished
	}
	gl := utf8.RuneCountInString(guess)
	wl := utf8.RuneCountInString(s.Word)
	switch {
	case gl < wl:
		return nil, ErrGuessTooShort
	case gl > wl:
		return nil, ErrGuessTooLong
	}

	for _, c := range guess {
		s.used[c] = true
	}

	res := Compare(s.Word, guess)
	s.Guesses = append(s.Guesses, guess)
	if res.Winning() {
		s.State = StateWon
	}
	return res, nil
}

// Terminate moves a playing session to its terminal quit state.
func (s *Session) Terminate() {
	if s.State == StatePlaying {
		s.State = StateTerminated
	}
}

// UnusedLetters returns the a-z letters absent from every length-valid
// guess so far, in ascending order.
func (s *Session) UnusedLetters() []string {
	out := make([]string, 0, len(alphabet))
	for _, r := range alphabet {
		if !s.used[r] {
			out = append(out, string(r))
		}
	}
	return out
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
