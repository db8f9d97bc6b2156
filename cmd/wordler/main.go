// cmd/wordler/main.go
//
// Interactive Wordler binary. Takes no arguments: it picks a secret and
// starts the REPL immediately, exiting 0 on a win or /exit and non-zero on
// an unrecoverable terminal failure.
//
// Environment:
//   LOG_LEVEL          zerolog level for diagnostics (default "info";
//                      "debug" also logs the selected secret).
//   WORDS_FILE         override the embedded dictionary.
//   WORDLER_DAILY      any non-empty value plays the daily word.
//   WORDLER_DAILY_SALT salt for the daily derivation (default "wordler").

package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wperron/wordler/internal/daily"
	"github.com/wperron/wordler/internal/game"
	"github.com/wperron/wordler/internal/repl"
	"github.com/wperron/wordler/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	word := pickWord(words.Words())
	log.Debug().Str("word", word).Msg("secret selected")

	r := repl.New(game.New(word), os.Stdout)
	if err := r.Run(); err != nil {
		log.Fatal().Err(err).Msg("repl exited")
	}
}

// pickWord selects the session secret: the deterministic daily word when
// WORDLER_DAILY is set, otherwise a uniform random draw.
func pickWord(dict words.Dict) string {
	if os.Getenv("WORDLER_DAILY") != "" && len(dict) > 0 {
		salt := getEnv("WORDLER_DAILY_SALT", "wordler")
		return dict[daily.WordIndex(time.Now(), salt, len(dict))]
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return dict.Pick(rng)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
