package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/walavie/walavie-site/internal/httpapi/handlers"
	"github.com/walavie/walavie-site/internal/httpapi/middleware"
	"github.com/walavie/walavie-site/pkg/config"
	"github.com/walavie/walavie-site/pkg/store"
	"github.com/walavie/walavie-site/pkg/telemetry"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type APIServer struct {
	config   *config.AppConfig
	router   *gin.Engine
	handlers *handlers.Handlers
	server   *http.Server
}

func NewAPIServer(cfg *config.AppConfig, dataStore store.Storage, metrics *telemetry.SubmissionMetrics) *APIServer {
	if cfg.IsLocal() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestContext(metrics))
	router.Use(middleware.CORS(&cfg.APIServer))

	s := &APIServer{
		config:   cfg,
		router:   router,
		handlers: handlers.NewHandlers(cfg, dataStore, metrics),
	}

	s.setupRoutes()
	s.setupStatic()
	return s
}

func (s *APIServer) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/status", s.handlers.Status)
	api.POST("/newsletter", s.handlers.Subscribe)
	api.POST("/contact", s.handlers.SubmitContact)

	// submissions are only exposed when they can be protected
	if s.config.APIServer.Auth.Enabled {
		admin := api.Group("/admin")
		admin.Use(middleware.APIKeyAuth(s.config))
		admin.GET("/contact", s.handlers.ListContactSubmissions)
		admin.GET("/contact/:id", s.handlers.GetContactSubmission)
	}
}

// setupStatic serves the built front-end. Unknown GET paths outside /api fall
// back to index.html so client-side routes survive a reload.
func (s *APIServer) setupStatic() {
	dir := s.config.APIServer.StaticDir
	var fileServer http.Handler
	if dir != "" {
		fileServer = http.FileServer(http.Dir(dir))
	}

	s.router.NoRoute(func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if fileServer == nil || !isRead || reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
			c.JSON(http.StatusNotFound, handlers.Response{Success: false, Message: "Not found"})
			return
		}

		clean := path.Clean("/" + reqPath)
		if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean))); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}

// Handler exposes the router, mainly for tests.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

func (s *APIServer) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.APIServer.Host, s.config.APIServer.Port)
}

// Start listens on the configured address and serves until ctx is cancelled.
func (s *APIServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to start http API server : %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the server on ln and shuts it down gracefully once ctx is done.
func (s *APIServer) Serve(ctx context.Context, ln net.Listener) error {
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("address", ln.Addr().String()).Info("starting http API server")
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http API server failed : %w", err)
		}
		logrus.Info("http API server stopped")
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("turning down http API server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("Error during HTTP API server shutdown")
			return err
		}
		return nil
	})

	return g.Wait()
}
