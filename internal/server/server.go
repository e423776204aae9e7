// Package server is the HTTP front end: the todo API, the demo pages,
// static files and the OpenAPI document.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/erraggy/mosscow/internal/apidoc"
	"github.com/erraggy/mosscow/internal/config"
	"github.com/erraggy/mosscow/internal/logging"
	"github.com/erraggy/mosscow/internal/store"
)

// Server owns the gin engine and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *logrus.Logger
	doc    *apidoc.Document
	engine *gin.Engine
}

// New builds the router for cfg.
func New(cfg *config.Config, log *logrus.Logger, todos *store.Todos) (*Server, error) {
	switch cfg.Env {
	case config.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	doc, err := apidoc.Build()
	if err != nil {
		return nil, err
	}
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	problems, err := renderProblems()
	if err != nil {
		return nil, err
	}
	public, err := publicFiles(cfg.PublicDir)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(logging.Middleware(log), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"operation": "server.recovery",
			"panic":     recovered,
		}).Error("handler panicked")
		writeMessage(c, http.StatusInternalServerError, MsgUnexpected)
	}))
	engine.SetHTMLTemplate(tmpl)

	s := &Server{cfg: cfg, log: log, doc: doc, engine: engine}

	pages := &Pages{problems: problems, public: public}
	pages.EnrichRoutes(engine)

	api := engine.Group("/api")
	api.GET("/openapi.json", s.openAPIJSONAction)
	api.GET("/openapi.yaml", s.openAPIYAMLAction)

	todoRoutes := api.Group("")
	if cfg.ValidateRequests {
		v, err := doc.NewValidator()
		if err != nil {
			return nil, err
		}
		todoRoutes.Use(requestValidation(v, log))
	}
	NewTodos(todos, log, !cfg.IsTest()).EnrichRoutes(todoRoutes)

	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Document returns the OpenAPI document served by the API.
func (s *Server) Document() *apidoc.Document { return s.doc }

func (s *Server) openAPIJSONAction(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeJSON, s.doc.JSON)
}

func (s *Server) openAPIYAMLAction(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", s.doc.YAML)
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. In-flight
// requests get ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	const op = "server.Serve"
	log := s.log.WithField("operation", op)

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", ln.Addr().String()).Info("listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
