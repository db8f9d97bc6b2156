// internal/daily/daily.go
//
// Deterministic daily word selection. The same (date, salt, dictionary
// size) always yields the same index, so every run on a given day plays
// the same secret without storing anything.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex derives an index in [0, dictLen) for a date using
// HMAC-SHA256(salt, DateKey) % dictLen. Returns 0 for an empty dictionary.
func WordIndex(date time.Time, salt string, dictLen int) int {
	if dictLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(dictLen))
}
