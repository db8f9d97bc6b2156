// cmd/wordlerd/main.go
//
// JSON API binary: serves the same game engine over HTTP for clients that
// are not a terminal. Sessions are held in memory only.
//
// Environment:
//   LOG_LEVEL   zerolog level (default "info").
//   WORDS_FILE  override the embedded dictionary.
//   PORT        listen port (default "5175").

package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wperron/wordler/internal/httpserver"
	"github.com/wperron/wordler/internal/store"
	"github.com/wperron/wordler/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	mem := store.NewMemoryStore()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	srv := httpserver.New(mem, words.Words(), rng)

	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("words", words.Count()).Msg("starting wordlerd")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
