// internal/httpserver/server.go
//
// HTTP front end for the game engine.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type).
//   - POST /session/new: create a session with a random (or fixed) secret.
//   - POST /session/guess: apply a guess and return outcomes + state.
//   - Diagnostics: "/", "/health", "/debug/words".
//
// Sessions live in the store only for the lifetime of the process; there
// is no durable persistence, no accounts, and no statistics.

package httpserver

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/wperron/wordler/internal/game"
	"github.com/wperron/wordler/internal/store"
	"github.com/wperron/wordler/internal/words"
)

// Server bundles router, session store, dictionary, and the shared PRNG.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  words.Dict

	mu  sync.Mutex // guards rng; *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict words.Dict, rng *rand.Rand) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, rng: rng}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordlerd","endpoints":["/health","POST /session/new","POST /session/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game endpoints ---
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Post("/session/guess", s.handleGuess)

	// Debug: dictionary size
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": len(s.dict)})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// randomWord picks a secret under the rng lock.
func (s *Server) randomWord() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dict.Pick(s.rng)
}

// newSessionReq/Res payloads for POST /session/new.
type newSessionReq struct {
	Answer string `json:"answer"` // optional fixed secret (testing)
}
type newSessionRes struct {
	SessionID string `json:"sessionId"`
}

// handleNewSession creates a session and stores it for later guesses.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	word := strings.TrimSpace(req.Answer)
	if word == "" {
		word = s.randomWord()
	}
	sess := game.New(word)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID})
}

// guessReq/Res payloads for POST /session/guess.
type guessReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
}
type guessRes struct {
	Outcomes game.Result `json:"outcomes"`
	State    game.State  `json:"state"` // "playing" | "won"
}

// handleGuess applies a guess to a stored session. Validation failures and
// finished sessions are 400s; unknown IDs are 404s.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		log.Error().Err(err).Msg("load session")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return
	}

	res, err := sess.Guess(strings.TrimSpace(req.Guess))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(guessRes{Outcomes: res, State: sess.State})
}
