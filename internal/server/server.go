// Package server exposes the translation and place-photo relays over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"

	"github.com/valpere/travelrelay/internal"
	"github.com/valpere/travelrelay/internal/logging"
)

const (
	shutdownTimeout      = 5 * time.Second
	requestHeadersHeader = "Access-Control-Request-Headers"
)

// Translator turns a translation request into the text returned to clients.
type Translator interface {
	Translate(ctx context.Context, req internal.TranslationRequest) string
}

// PhotoFinder resolves a place name into a photo URL.
type PhotoFinder interface {
	FindPhoto(ctx context.Context, query string) (*internal.PlacePhoto, error)
	HasAPIKey() bool
}

type Config struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type Server struct {
	config     Config
	translator Translator
	photos     PhotoFinder
	logger     logging.Logger
}

func New(config Config, translator Translator, photos PhotoFinder, logger logging.Logger) *Server {
	return &Server{
		config:     config,
		translator: translator,
		photos:     photos,
		logger:     logging.Ensure(logger),
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("OPTIONS /translate", s.handleTranslatePreflight)
	mux.HandleFunc("GET /place-photos", s.handlePlacePhotos)

	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodPost, http.MethodOptions, http.MethodGet},
		AllowedHeaders:       []string{"Content-Type"},
		OptionsSuccessStatus: http.StatusOK,
	})

	return s.withRequestID(s.withAccessLog(s.withRecovery(lowerRequestHeaders(c.Handler(mux)))))
}

// lowerRequestHeaders lowercases Access-Control-Request-Headers. The cors
// handler only matches lowercase names, which browsers send but other
// clients may not.
func lowerRequestHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if values := r.Header.Values(requestHeadersHeader); len(values) > 0 {
			r.Header.Set(requestHeadersHeader, strings.ToLower(strings.Join(values, ",")))
		}
		next.ServeHTTP(w, r)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", "http://"+srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
