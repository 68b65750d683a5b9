// Package function exposes the word filter as an HTTP Cloud Function.
package function

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/rs/zerolog"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/bootstrap"
	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/logging"
	"crosswarped.com/wordle/internal/prompt"
	"crosswarped.com/wordle/internal/source"
	"crosswarped.com/wordle/pkg/primitives"
)

// Path is where the function is served by cmd/wordle-function.
const Path = "/filter-words"

// maxBody caps request bodies; a valid request is a few dozen bytes.
const maxBody = 1 << 16

func init() {
	functions.HTTP("FilterWords", FilterWords)
}

type FilterWordsRequest struct {
	// Positions is a five-character pattern such as "__a_e"; '_', '.', '?' and
	// ' ' leave a slot open.
	Positions string `json:"positions"`
	Present   string `json:"present"`
	Absent    string `json:"absent"`
}

type FilterWordsResponse struct {
	Success bool     `json:"success"`
	Words   []string `json:"words"`
	Outcome string   `json:"outcome,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Handler serves filter requests against one word list, loaded on first use.
type Handler struct {
	provider source.Provider
	log      zerolog.Logger

	mu     sync.Mutex
	loaded bool
	words  wordle.WordList
}

func NewHandler(provider source.Provider, log zerolog.Logger) *Handler {
	return &Handler{provider: provider, log: log}
}

// wordList returns the cached list, loading it on first use. A failed load is
// not cached, so the next request tries again.
func (h *Handler) wordList(ctx context.Context) (wordle.WordList, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.loaded {
		return h.words, nil
	}

	// The first request's cancellation must not poison the cached list.
	words, err := h.provider.Words(context.WithoutCancel(ctx))
	if err != nil {
		return nil, err
	}
	h.words, h.loaded = words, true
	h.log.Info().Int("words", len(words)).Msg("word list ready")
	return words, nil
}

func (r FilterWordsRequest) constraints() (wordle.Constraints, error) {
	var c wordle.Constraints
	var err error
	if c.Positions, err = wordle.ParsePattern(r.Positions); err != nil {
		return c, fmt.Errorf("positions: %w", err)
	}
	if err := prompt.ValidateLetters(r.Present, wordle.WordLength); err != nil {
		return c, fmt.Errorf("present: %w", err)
	}
	if err := prompt.ValidateLetters(r.Absent, 0); err != nil {
		return c, fmt.Errorf("absent: %w", err)
	}
	present, _ := primitives.ParseCharSet(r.Present)
	absent, _ := primitives.ParseCharSet(r.Absent)
	c.Present, c.Absent = *present, *absent
	return c, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(FilterWordsResponse{Success: false, Words: []string{}, Error: msg}); err != nil {
		h.log.Error().Err(err).Msg("encoding error response")
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method))
		return
	}

	var req FilterWordsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		h.log.Debug().Err(err).Msg("parsing JSON body")
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}

	c, err := req.constraints()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.wordList(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("loading word list")
		h.writeError(w, http.StatusInternalServerError, "Word list unavailable")
		return
	}

	words := wordle.Filter(list, c)
	h.log.Debug().Stringer("constraints", &c).Int("candidates", len(words)).Msg("filtered")

	resp := FilterWordsResponse{
		Success: true,
		Words:   words,
		Outcome: wordle.OutcomeOf(words).String(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error().Err(err).Msg("encoding response")
	}
}

var (
	defaultOnce    sync.Once
	defaultHandler *Handler
)

// FilterWords is the Cloud Function entry point. Its word list comes from
// BIGQUERY_PROJECT/BIGQUERY_TABLE when set, otherwise from WORDS_FILE, fetched
// from WORDS_URL when missing.
func FilterWords(w http.ResponseWriter, r *http.Request) {
	defaultOnce.Do(func() {
		log := logging.NewJSON(os.Stderr, os.Getenv("VERBOSE") == "true")
		defaultHandler = NewHandler(providerFromEnv(log), log)
	})
	defaultHandler.ServeHTTP(w, r)
}

func providerFromEnv(log zerolog.Logger) source.Provider {
	if project := os.Getenv("BIGQUERY_PROJECT"); project != "" {
		return &source.BigQuery{
			Project:  project,
			Table:    os.Getenv("BIGQUERY_TABLE"),
			Column:   os.Getenv("BIGQUERY_COLUMN"),
			Location: os.Getenv("BIGQUERY_LOCATION"),
			Log:      log,
		}
	}

	path := os.Getenv("WORDS_FILE")
	if path == "" {
		path = config.DefaultWordsFile
	}
	url, ok := os.LookupEnv("WORDS_URL")
	if !ok {
		url = config.DefaultWordsURL
	}
	return &source.File{
		Path:    path,
		URL:     url,
		Fetcher: bootstrap.NewFetcher(log, nil, false),
		Log:     log,
	}
}
