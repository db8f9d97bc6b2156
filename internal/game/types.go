// internal/game/types.go
//
// Core type definitions for the Wordler engine.
// Defines:
//   - Outcome: per-letter result of a guess (correct/present/absent/bounds).
//   - Result: ordered outcomes for a whole guess, renderable as glyphs.
//   - State: coarse session lifecycle tag.
//   - Session: state for a single game session.

package game

import "strings"

// Outcome represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the secret at the same position.
//   - "present": letter occurs somewhere in the secret, not at this position.
//   - "absent":  letter does not occur in the secret at all.
//   - "bounds":  guess position falls beyond the secret's length.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomePresent Outcome = "present"
	OutcomeAbsent  Outcome = "absent"
	OutcomeBounds  Outcome = "bounds"
)

// Glyph returns the terminal rendering for a single outcome.
func (o Outcome) Glyph() string {
	switch o {
	case OutcomeCorrect:
		return "🟩"
	case OutcomePresent:
		return "🟨"
	case OutcomeBounds:
		return "❌"
	default:
		return "⬛"
	}
}

// Result is the ordered per-letter evaluation of one guess, in guess order.
// Its length always equals the guess's letter count.
type Result []Outcome

// Winning reports whether every outcome is OutcomeCorrect. Given equal
// lengths this implies the guess equals the secret. An empty result is
// never winning.
func (r Result) Winning() bool {
	if len(r) == 0 {
		return false
	}
	for _, o := range r {
		if o != OutcomeCorrect {
			return false
		}
	}
	return true
}

// String renders the result as a row of glyphs, one per guessed letter.
func (r Result) String() string {
	var b strings.Builder
	for _, o := range r {
		b.WriteString(o.Glyph())
	}
	return b.String()
}

// State is the coarse lifecycle tag of a session.
// won and terminated are terminal: no further guesses are accepted.
type State string

const (
	StatePlaying    State = "playing"
	StateWon        State = "won"
	StateTerminated State = "terminated"
)

// Session holds the state of a single game session.
type Session struct {
	ID      string        // unique session identifier (random hex string)
	Word    string        // the secret word, never mutated after New
	Guesses []string      // guesses that passed length validation
	State   State         // playing | won | terminated
	used    map[rune]bool // per-letter "has been guessed" flags, seeded a-z
}
