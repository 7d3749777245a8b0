package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/aretw0/trinomial/pkg/markup"
	"github.com/aretw0/trinomial/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/oapi-codegen/runtime"
)

// maxBodyBytes bounds the request body before JSON decoding.
// The trinomial itself is further limited by runner.ValidateInput.
const maxBodyBytes = 64 << 10

// Engine is the part of trinomial.Engine the server needs.
type Engine interface {
	FactorAs(ctx context.Context, input string, format markup.Format) (*domain.Result, error)
}

// FactorRequest is the body of POST /api/factor.
type FactorRequest struct {
	Input  string `json:"input" mapstructure:"input"`
	Format string `json:"format,omitempty" mapstructure:"format"`
}

// FactorResponse mirrors the FactorResponse schema of openapi.yaml.
type FactorResponse struct {
	Input    string         `json:"input"`
	Outcome  domain.Outcome `json:"outcome"`
	Markup   string         `json:"markup"`
	Factored string         `json:"factored,omitempty"`
	Cached   bool           `json:"cached"`
}

// Server serves the page and the JSON API.
type Server struct {
	Engine      Engine
	Metrics     http.Handler
	MetricsPath string
	Logger      *slog.Logger
}

// Option configures the handler returned by NewHandler.
type Option func(*Server)

// WithMetrics mounts h at /metrics, or at the path set by WithMetricsPath.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithMetricsPath moves the metrics route.
func WithMetricsPath(path string) Option {
	return func(s *Server) {
		s.MetricsPath = path
	}
}

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = l
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine, MetricsPath: "/metrics"}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Get("/", server.GetPage)
	r.Get("/api/factor", server.FactorQuery)
	r.Post("/api/factor", server.Factor)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if server.Metrics != nil {
		r.Handle(server.MetricsPath, server.Metrics)
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

// Factor handles the POST /api/factor request.
func (s *Server) Factor(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Factor: Invalid request body", "error", err)
		return
	}
	if err := validateSchema("FactorRequest", raw); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Factor: Schema validation failed", "error", err)
		return
	}

	var body FactorRequest
	if err := mapstructure.Decode(raw, &body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Factor: Decode failed", "error", err)
		return
	}

	s.respond(w, r, body.Input, body.Format)
}

// FactorQuery handles the GET /api/factor?input=... request.
func (s *Server) FactorQuery(w http.ResponseWriter, r *http.Request) {
	var input, format string
	if err := runtime.BindQueryParameter("form", true, true, "input", r.URL.Query(), &input); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter input: %v", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter format: %v", err), http.StatusBadRequest)
		return
	}
	s.respond(w, r, input, format)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, input, formatName string) {
	format, err := markup.ParseFormat(formatName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := s.Engine.FactorAs(r.Context(), input, format)
	if err != nil {
		if errors.Is(err, runner.ErrInputTooLarge) || errors.Is(err, runner.ErrInvalidUTF8) {
			http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
			s.Logger.Warn("Factor: Input rejected", "error", err, "size", len(input))
			return
		}
		http.Error(w, fmt.Sprintf("Factor error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Factor failed", "error", err)
		return
	}

	resp := FactorResponse{
		Input:    res.Input,
		Outcome:  res.Outcome,
		Markup:   res.Markup,
		Factored: res.Factored,
		Cached:   res.Cached,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.Logger.Error("Factor response encode failed", "error", err)
	}
}

// GetPage serves the single-page form.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(pageHTML))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	resp := map[string]string{
		"app":         "trinomial-http",
		"version":     strings.TrimSpace(trinomial.Version),
		"api_version": apiVersion,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Trinomial API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

const pageHTML = `<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Factorización de trinomios</title>
    <script id="MathJax-script" async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"></script>
</head>
<body>
<h1>Factorización de trinomios ax^2+bx+c</h1>
<form id="factor-form">
    <input id="trinomial" name="input" type="text" placeholder="2x^2+7x+3" autocomplete="off" />
    <button id="factor-button" type="submit">Factorizar</button>
</form>
<div id="steps"></div>
<script>
    document.getElementById('factor-form').addEventListener('submit', async (ev) => {
        ev.preventDefault();
        const steps = document.getElementById('steps');
        const res = await fetch('/api/factor', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({ input: document.getElementById('trinomial').value }),
        });
        if (!res.ok) {
            steps.textContent = await res.text();
            return;
        }
        const data = await res.json();
        steps.innerHTML = data.markup;
        if (window.MathJax && typeof window.MathJax.typeset === 'function') {
            window.MathJax.typeset();
        }
    });
</script>
</body>
</html>
`
