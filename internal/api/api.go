// Package api implements the HTTP interface to the catalog.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/reelcat/reelcat/internal/catalog"
	"github.com/reelcat/reelcat/internal/events"
)

// RefreshService triggers catalog refreshes; implemented by server.Runner.
type RefreshService interface {
	RefreshNow(ctx context.Context) ([]catalog.Entry, error)
	Enqueue() bool
}

// HistoryProvider lists past refresh runs; implemented by events.RefreshLog.
type HistoryProvider interface {
	Recent(limit int) ([]events.RefreshRecord, error)
}

// Server is the HTTP API server.
type Server struct {
	store     *catalog.Store
	refresher RefreshService
	history   HistoryProvider
	moviesDir string
	version   string
	log       *slog.Logger
}

// New creates a new API server.
func New(store *catalog.Store, refresher RefreshService, history HistoryProvider, moviesDir, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		store:     store,
		refresher: refresher,
		history:   history,
		moviesDir: moviesDir,
		version:   version,
		log:       log,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /movies", s.listMovies)
	mux.HandleFunc("POST /refresh", s.triggerRefresh)
	mux.HandleFunc("GET /refresh/history", s.refreshHistory)
	mux.HandleFunc("GET /stream/{filename}", s.stream)
	mux.HandleFunc("GET /status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type refreshAck struct {
	Status string `json:"status"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Movies  int    `json:"movies"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// listMovies serves the current snapshot, building one synchronously when
// none exists yet.
func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Load()
	if errors.Is(err, catalog.ErrNoSnapshot) {
		entries, err = s.refresher.RefreshNow(r.Context())
	}
	if err != nil {
		s.log.Error("list movies failed", "error", err)
		writeError(w, http.StatusInternalServerError, "REFRESH_FAILED", "Could not build catalog")
		return
	}

	if entries == nil {
		entries = []catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// triggerRefresh enqueues a background refresh and acknowledges immediately.
func (s *Server) triggerRefresh(w http.ResponseWriter, r *http.Request) {
	s.refresher.Enqueue()
	writeJSON(w, http.StatusAccepted, refreshAck{Status: "queued"})
}

func (s *Server) refreshHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.history.Recent(queryInt(r, "limit", 20))
	if err != nil {
		s.log.Error("refresh history failed", "error", err)
		writeError(w, http.StatusInternalServerError, "DB_ERROR", "Could not load history")
		return
	}
	if records == nil {
		records = []events.RefreshRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	count := 0
	if entries, err := s.store.Load(); err == nil {
		count = len(entries)
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Version: s.version, Movies: count})
}

var contentTypes = map[string]string{
	".mp4": "video/mp4",
	".mkv": "video/x-matroska",
	".avi": "video/x-msvideo",
}

// stream serves the raw bytes of one video file with a chunked copy, never
// buffering the whole file in memory.
func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	if name == "" || name != filepath.Base(name) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
		return
	}

	f, err := openVideo(s.moviesDir, name)
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
		return
	}
	defer f.Close()

	ct := contentTypes[filepath.Ext(name)]
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	if info, err := f.Stat(); err == nil {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", info.Size()))
	}

	if err := copyChunks(w, f); err != nil {
		// Headers are gone; all we can do is log the broken stream.
		s.log.Debug("stream aborted", "file", name, "error", err)
	}
}
