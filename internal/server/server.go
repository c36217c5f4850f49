package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gur-shatz/hashburger/internal/config"
	"github.com/gur-shatz/hashburger/internal/log"
	"github.com/gur-shatz/hashburger/pkg/hashburger"
)

// inputParam carries the string to burgerize; every other query parameter
// is a setting override.
const inputParam = "input"

// Server serves hashburgers over HTTP. It holds no state besides its
// defaults and is safe for concurrent use.
type Server struct {
	defaults config.Settings
	log      *log.Logger
}

// Result is the JSON body of a successful request.
type Result struct {
	Input      string `json:"input"`
	Hashburger string `json:"hashburger"`
}

// New creates a Server answering with defaults unless a request overrides them.
func New(defaults config.Settings, logger *log.Logger) *Server {
	return &Server{defaults: defaults, log: logger}
}

// Routes returns a chi.Router with all API routes mounted.
func (this *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", this.handleHealth)
	r.Get("/hash", this.handleHash)
	r.Get("/hash-path", this.handleHashPath)

	return r
}

func (this *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (this *Server) handleHash(w http.ResponseWriter, r *http.Request) {
	input, settings, ok := this.parseRequest(w, r)
	if !ok {
		return
	}

	opts, err := settings.Options()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := hashburger.Burgerize(input, opts)
	this.log.Verbose("GET /hash %q -> %q", input, out)
	writeJSON(w, http.StatusOK, Result{Input: input, Hashburger: out})
}

func (this *Server) handleHashPath(w http.ResponseWriter, r *http.Request) {
	input, settings, ok := this.parseRequest(w, r)
	if !ok {
		return
	}

	opts, err := settings.PathOptions()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := hashburger.BurgerizePath(input, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, hashburger.ErrNotText) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	this.log.Verbose("GET /hash-path %q -> %q", input, out)
	writeJSON(w, http.StatusOK, Result{Input: input, Hashburger: out})
}

// parseRequest extracts the input and the effective settings. On failure it
// has already written the error response.
func (this *Server) parseRequest(w http.ResponseWriter, r *http.Request) (string, config.Settings, bool) {
	query := r.URL.Query()

	values, ok := query[inputParam]
	if !ok || len(values) != 1 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("exactly one %q parameter is required", inputParam))
		return "", config.Settings{}, false
	}

	overrides := config.O{}
	names := make([]string, 0, len(query))
	for name := range query {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if name == inputParam {
			continue
		}
		path, known := config.KeyPath(name)
		if !known {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown parameter %q", name))
			return "", config.Settings{}, false
		}
		overrides.Set(path, query.Get(name))
	}

	settings, err := this.defaults.Apply(overrides)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", config.Settings{}, false
	}

	return values[0], settings, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
