// internal/words/words.go
//
// Dictionary management for the game.
//
// Responsibilities:
//   - Load the newline-delimited candidate list from an environment-provided
//     file or fall back to the embedded default.
//   - Pick a secret word uniformly at random with a caller-supplied PRNG.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • One candidate word per line; blank lines are skipped.
//   • Selected words are returned exactly as they appear in the list,
//     never truncated or normalized.
//   • Loading runs once (sync.Once).

package words

import (
	"bufio"
	_ "embed"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
)

//go:embed words.txt
var embedded string

// fallbackWord is returned when the dictionary has no candidates at all.
const fallbackWord = "fudge"

// Dict is a list of candidate secret words.
type Dict []string

var (
	initOnce sync.Once
	dict     Dict
	initErr  error
)

// Init loads the dictionary exactly once: from WORDS_FILE when set,
// otherwise from the embedded default list.
func Init() error {
	initOnce.Do(func() {
		if path := os.Getenv("WORDS_FILE"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				initErr = err
				return
			}
			defer f.Close()
			dict, initErr = Parse(f)
			return
		}
		dict, initErr = Parse(strings.NewReader(embedded))
	})
	return initErr
}

// Words returns the loaded dictionary. Init must have run first.
func Words() Dict { return dict }

// Count reports the number of loaded candidate words.
func Count() int { return len(dict) }

// Parse reads one candidate word per line, skipping blank lines. No other
// structure is assumed of the input.
func Parse(r io.Reader) (Dict, error) {
	var out Dict
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Pick selects one word uniformly at random, or fallbackWord when the
// dictionary is empty. The PRNG is passed in so callers own seeding and
// tests can substitute a fixed sequence.
func (d Dict) Pick(rng *rand.Rand) string {
	if len(d) == 0 {
		return fallbackWord
	}
	return d[rng.Intn(len(d))]
}
