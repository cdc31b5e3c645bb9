package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"webpage_generator/config"
	"webpage_generator/generator"
	"webpage_generator/page"
)

//go:embed web/index.html
var embeddedWeb embed.FS

const maxBodyBytes = 1 << 20

type Server struct {
	gen     *generator.Generator
	timeout time.Duration
	tmpl    *template.Template
	log     zerolog.Logger
}

func New(gen *generator.Generator, cfg config.Config, logger zerolog.Logger) (*Server, error) {
	if gen == nil {
		return nil, errors.New("generator required")
	}
	tmpl, err := template.ParseFS(embeddedWeb, "web/index.html")
	if err != nil {
		return nil, err
	}
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Server{gen: gen, timeout: timeout, tmpl: tmpl, log: logger}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleForm)
	mux.HandleFunc("GET /api/models", s.handleModels)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/normalize", s.handleNormalize)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s.logMiddleware(mux)
}

// --- UI ---

type pageData struct {
	Models   []generator.Model
	Selected string
	Prompt   string
	Warning  string
	Error    string
	Hint     string
	View     *page.View
	Code     template.HTML
	Download template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pageData{Models: generator.Models(), Selected: generator.DefaultModel().Name})
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data := pageData{
		Models:   generator.Models(),
		Selected: r.PostFormValue("model"),
		Prompt:   r.PostFormValue("prompt"),
	}
	if data.Selected == "" {
		data.Selected = generator.DefaultModel().Name
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	res, err := s.gen.Generate(ctx, data.Prompt, data.Selected)
	var remote *generator.RemoteError
	switch {
	case errors.Is(err, generator.ErrEmptyPrompt):
		data.Warning = "Please enter a prompt to generate code."
	case errors.As(err, &remote):
		data.Error = remote.Err.Error()
		data.Hint = remote.Hint()
	case err != nil:
		data.Error = err.Error()
	default:
		view, err := page.Build(res)
		if err != nil {
			data.Error = err.Error()
			break
		}
		data.View = &view
		data.Code = template.HTML(view.CodeHTML)
		data.Download = template.HTML(view.DownloadLink)
	}
	s.render(w, r, data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render template")
	}
}

// --- API ---

type generateReq struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

type errorResp struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"models":  generator.Models(),
		"default": generator.DefaultModel().Name,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	res, err := s.gen.Generate(ctx, req.Prompt, req.Model)
	if err != nil {
		var remote *generator.RemoteError
		switch {
		case errors.As(err, &remote):
			writeJSON(w, http.StatusBadGateway, errorResp{Error: err.Error(), Hint: remote.Hint()})
		case errors.Is(err, generator.ErrEmptyPrompt), errors.Is(err, generator.ErrUnknownModel):
			writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		}
		return
	}
	view, err := page.Build(res)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleNormalize runs the normalizer alone on a raw model reply.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Response-Shape", generator.Classify(string(raw)).String())
	_, _ = io.WriteString(w, generator.Normalize(string(raw)))
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		l := s.log.With().Str("request_id", id).Logger()
		r = r.WithContext(l.WithContext(r.Context()))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		l.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
