package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/trinomial"
	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/aretw0/trinomial/pkg/markup"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// GrammarURI identifies the resource describing the accepted input shape.
const GrammarURI = "trinomial://grammar"

// FactorResponse aligns with the OpenAPI schema and provides a unified structure across adapters.
type FactorResponse struct {
	Input    string         `json:"input" jsonschema_description:"The input as received"`
	Outcome  domain.Outcome `json:"outcome" jsonschema_description:"factored, non_real_roots or malformed_input"`
	Markup   string         `json:"markup" jsonschema_description:"Step-by-step explanation with embedded math"`
	Factored string         `json:"factored,omitempty" jsonschema_description:"Compact factored form when real roots exist"`
	Cached   bool           `json:"cached" jsonschema_description:"Whether the result came from the cache"`
}

// factorArgs are the arguments of the factor_trinomial tool.
type factorArgs struct {
	Input  string `mapstructure:"input"`
	Format string `mapstructure:"format"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	FactorAs(ctx context.Context, input string, format markup.Format) (*domain.Result, error)
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. A nil logger means slog.Default().
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine: engine,
		logger: logger,
		mcpServer: server.NewMCPServer("trinomial-mcp", strings.TrimSpace(trinomial.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, mainly for in-process clients and tests.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: factor_trinomial
	factorTool := mcp.NewTool("factor_trinomial",
		mcp.WithDescription("Explain, step by step, the factorization of a quadratic trinomial ax^2+bx+c (for example 2x^2+7x+3)."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The trinomial, e.g. x^2-5x+6")),
		mcp.WithString("format", mcp.Description("Output markup: html (default) or markdown"), mcp.Enum("html", "markdown")),
		mcp.WithOutputSchema[FactorResponse](),
	)
	s.mcpServer.AddTool(factorTool, mcp.NewStructuredToolHandler(s.handleFactor))
}

func (s *Server) handleFactor(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FactorResponse, error) {
	var in factorArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return FactorResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	format, err := markup.ParseFormat(in.Format)
	if err != nil {
		return FactorResponse{}, err
	}

	res, err := s.engine.FactorAs(ctx, in.Input, format)
	if err != nil {
		s.logger.Warn("MCP Factor: Request failed", "error", err, "size", len(in.Input))
		return FactorResponse{}, fmt.Errorf("factor failed: %w", err)
	}

	return FactorResponse{
		Input:    res.Input,
		Outcome:  res.Outcome,
		Markup:   res.Markup,
		Factored: res.Factored,
		Cached:   res.Cached,
	}, nil
}

const grammarText = `Accepted shape: ax^2+bx+c (white space is ignored)
Pattern: ^([+-]?\d*)x\^2([+-]\d+)x([+-]\d+)$
a may be omitted (1) or a bare sign; b and c need an explicit sign and digits.
Examples: 2x^2+7x+3, x^2-5x+6
`

func (s *Server) registerResources() {
	// EXPOSE: trinomial://grammar
	s.mcpServer.AddResource(mcp.NewResource(GrammarURI, "Accepted trinomial grammar",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GrammarURI,
				MIMEType: "text/plain",
				Text:     grammarText,
			},
		}, nil
	})
}
