// Package httpapi serves the opsbot operations as a JSON HTTP API built on
// gin. Handlers are thin: they bind the request, call the services and map
// errors to status codes.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Options tune the HTTP-only concerns.
type Options struct {
	AllowedOrigins []string
	LoginRate      float64
	LoginBurst     int
}

type HTTPServer struct {
	address     string
	router      *gin.Engine
	users       *services.UserService
	chat        *services.ChatService
	credentials *services.CredentialService
	analytics   *services.AnalyticsService
	logger      logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, opts Options, us *services.UserService, cs *services.ChatService,
	crs *services.CredentialService, as *services.AnalyticsService) *HTTPServer {

	s := &HTTPServer{
		address:     a,
		logger:      l.With("module", "http_server"),
		users:       us,
		chat:        cs,
		credentials: crs,
		analytics:   as,
	}

	r := gin.New()
	r.Use(corsMiddleware(opts.AllowedOrigins))
	r.Use(s.requestLogger())
	r.Use(gin.Recovery())

	s.routes(r, newLimiterCache[string](opts.LoginRate, opts.LoginBurst))
	s.router = r

	return s
}

// Handler exposes the router, for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.serve(ctx, lis)
}

func (s *HTTPServer) serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// corsMiddleware allows any origin for "*", otherwise only the listed ones
// with credentials.
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, o := range origins {
		allowed[o] = true
	}

	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if allowed["*"] {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOriginFunc = func(origin string) bool { return allowed[origin] }
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
