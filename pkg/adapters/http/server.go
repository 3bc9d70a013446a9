package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"strconv"

	"github.com/aretw0/htmlpp"
	"github.com/aretw0/htmlpp/internal/metrics"
	"github.com/aretw0/htmlpp/pkg/strip"
	"github.com/aretw0/htmlpp/pkg/tail"
	"github.com/aretw0/htmlpp/pkg/trim"
	"github.com/go-chi/chi/v5"
)

// MaxBodySize caps the document accepted by POST /strip.
const MaxBodySize = 10 << 20

// Server exposes the stripper, the trim renderer and the tail utility over HTTP.
type Server struct {
	Metrics *metrics.Recorder
	Logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics records stripper activity and serves it on /metrics.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Server) {
		s.Metrics = rec
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates the HTTP handler.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{Logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/strip", s.Strip)
	r.Route("/trims", func(r chi.Router) {
		r.Get("/", s.ListTrims)
		r.Get("/render", s.RenderTrim)
	})
	r.Route("/tail", func(r chi.Router) {
		r.Get("/", s.CommonTail)
		r.Get("/cases", s.TailCases)
	})
	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics.Handler())
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MarkerErrorResponse is returned with 422 when the document has a malformed marker.
type MarkerErrorResponse struct {
	Error  string `json:"error"`
	Line   string `json:"line"`
	LineNo int    `json:"line_no"`
}

// PatternResponse describes one catalog entry.
type PatternResponse struct {
	Index   int          `json:"index"`
	Pattern trim.Pattern `json:"pattern"`
	Width   int          `json:"width"`
}

// TailResponse is the result of one CommonTail evaluation.
type TailResponse struct {
	W     uint64   `json:"w"`
	H     uint64   `json:"h"`
	Tail  *big.Int `json:"tail"`
	Shift uint     `json:"shift"`
}

// Strip handles the POST /strip request.
func (s *Server) Strip(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, MaxBodySize)

	opts := []strip.Option{strip.WithLogger(s.Logger)}
	if s.Metrics != nil {
		opts = append(opts, strip.WithObserver(s.Metrics))
	}

	// Buffered so a late malformed marker can still change the status code.
	var out bytes.Buffer
	stats, err := strip.New(opts...).Run(r.Context(), body, &out)
	if s.Metrics != nil {
		s.Metrics.ObserveRun(err)
	}

	var me *strip.MarkerError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &me):
		s.Logger.Warn("Strip: Malformed marker", "line_no", me.LineNo)
		writeJSON(w, http.StatusUnprocessableEntity, MarkerErrorResponse{
			Error:  strip.ErrMalformedMarker.Error(),
			Line:   me.Line,
			LineNo: me.LineNo,
		}, s.Logger)
		return
	case errors.As(err, &tooLarge):
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	case err != nil:
		s.Logger.Error("Strip failed", "error", err)
		http.Error(w, fmt.Sprintf("Strip error: %v", err), http.StatusInternalServerError)
		return
	}

	s.Logger.Debug("Strip: Done", "lines", stats.Lines, "emitted", stats.Emitted, "suppressed", stats.Suppressed)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.Copy(w, &out); err != nil {
		s.Logger.Error("Strip response write failed", "error", err)
	}
}

// ListTrims handles the GET /trims request.
func (s *Server) ListTrims(w http.ResponseWriter, r *http.Request) {
	patterns, err := trim.Lookup(r.URL.Query().Get("catalog"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := make([]PatternResponse, len(patterns))
	for i, p := range patterns {
		resp[i] = PatternResponse{Index: i, Pattern: p, Width: p.Width()}
	}
	writeJSON(w, http.StatusOK, resp, s.Logger)
}

// RenderTrim handles the GET /trims/render request.
func (s *Server) RenderTrim(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p, err := trim.ParsePattern(q.Get("pattern"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid pattern: %v", err), http.StatusBadRequest)
		return
	}

	length := trim.DefaultLength
	if raw := q.Get("length"); raw != "" {
		length, err = strconv.Atoi(raw)
		if err == nil {
			err = trim.CheckLength(length)
		}
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid length %q", raw), http.StatusBadRequest)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, trim.Render(p, length))
}

// CommonTail handles the GET /tail request.
func (s *Server) CommonTail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	a, err := strconv.ParseUint(q.Get("w"), 0, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid w: %v", err), http.StatusBadRequest)
		return
	}
	b, err := strconv.ParseUint(q.Get("h"), 0, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid h: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, tailResponse(a, b), s.Logger)
}

// TailCases handles the GET /tail/cases request.
func (s *Server) TailCases(w http.ResponseWriter, r *http.Request) {
	cases := tail.Cases()
	resp := make([]TailResponse, len(cases))
	for i, c := range cases {
		resp[i] = tailResponse(c.W, c.H)
	}
	writeJSON(w, http.StatusOK, resp, s.Logger)
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":     "htmlpp-http",
		"version": htmlpp.Version,
	}
	writeJSON(w, http.StatusOK, resp, s.Logger)
}

func tailResponse(a, b uint64) TailResponse {
	return TailResponse{W: a, H: b, Tail: tail.CommonTail(a, b), Shift: tail.Shift(a, b)}
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "error", err)
	}
}
