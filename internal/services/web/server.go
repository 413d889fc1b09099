package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/louisbranch/narrative.dice/internal/platform/i18n/catalog"
	"github.com/louisbranch/narrative.dice/internal/platform/requestctx"
	"github.com/louisbranch/narrative.dice/internal/platform/timeouts"
	"github.com/louisbranch/narrative.dice/internal/random"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Locale is used when a request names no locale.
	Locale string
	Logger *log.Logger
	// NewSeed supplies seeds for rolls without a seed parameter.
	NewSeed func() (int64, error)
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler.
func NewHandler(cfg Config) http.Handler {
	h := &handler{
		locale:  cfg.Locale,
		newSeed: cfg.NewSeed,
		logger:  cfg.Logger,
	}
	if h.locale == "" {
		h.locale = catalog.BaseLocale
	}
	if h.newSeed == nil {
		h.newSeed = random.NewSeed
	}
	if h.logger == nil {
		h.logger = log.New(os.Stderr, "[WEB] ", log.LstdFlags)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /roll", h.handleRoll)
	mux.HandleFunc("GET /faces", h.handleFaces)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/faces", http.StatusFound)
	})
	return withLocale(mux, h.locale)
}

// withLocale resolves the request locale once and stores it in context.
func withLocale(next http.Handler, fallback string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := catalog.Default().ResolveLocale(requestLocale(r, fallback))
		next.ServeHTTP(w, r.WithContext(requestctx.WithLocale(r.Context(), locale)))
	})
}

// NewServer validates config and constructs a web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
