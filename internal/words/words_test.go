package words

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkipsBlankLines(t *testing.T) {
	d, err := Parse(strings.NewReader("fudge\n\n  \nlodge\nsassy\n"))
	require.NoError(t, err)
	assert.Equal(t, Dict{"fudge", "lodge", "sassy"}, d)
}

func TestParseKeepsWordsVerbatim(t *testing.T) {
	d, err := Parse(strings.NewReader("Fudge\nlodging\n"))
	require.NoError(t, err)
	// no lowercasing, no length filtering: line splitting only
	assert.Equal(t, Dict{"Fudge", "lodging"}, d)
}

func TestPickIsDeterministicForSeed(t *testing.T) {
	d := Dict{"fudge", "lodge", "sassy", "crane", "pilot"}

	first := d.Pick(rand.New(rand.NewSource(42)))
	second := d.Pick(rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
	assert.Contains(t, d, first)
}

func TestPickCoversDictionary(t *testing.T) {
	d := Dict{"fudge", "lodge", "sassy"}
	rng := rand.New(rand.NewSource(1))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[d.Pick(rng)] = true
	}
	assert.Len(t, seen, len(d))
}

func TestPickEmptyFallsBack(t *testing.T) {
	var d Dict
	assert.Equal(t, "fudge", d.Pick(rand.New(rand.NewSource(7))))
}

func TestEmbeddedDictionary(t *testing.T) {
	d, err := Parse(strings.NewReader(embedded))
	require.NoError(t, err)
	require.NotEmpty(t, d)
	for _, w := range d {
		assert.Len(t, w, 5, "embedded word %q", w)
	}
	assert.Contains(t, d, "fudge")
}
