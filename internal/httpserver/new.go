package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-bot/internal/chat"
	"task-manager-bot/internal/service"
	"task-manager-bot/internal/whatsapp"
)

// Server exposes the structured JSON API and the WhatsApp webhook.
type Server struct {
	engine *gin.Engine
	logger *zap.Logger
	port   int

	tasks       *service.TaskService
	categories  *service.CategoryService
	interpreter *chat.Interpreter
	sender      *whatsapp.Client
	verifyToken string
}

// Config is the dependency bag passed to New.
type Config struct {
	Logger      *zap.Logger
	Port        int
	Mode        string
	Tasks       *service.TaskService
	Categories  *service.CategoryService
	Interpreter *chat.Interpreter
	Sender      *whatsapp.Client
	VerifyToken string
}

func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Tasks == nil || cfg.Categories == nil {
		return nil, errors.New("task and category services are required")
	}
	if cfg.Interpreter == nil {
		return nil, errors.New("interpreter is required")
	}
	if cfg.Port == 0 {
		return nil, errors.New("port is required")
	}

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &Server{
		engine:      gin.New(),
		logger:      cfg.Logger,
		port:        cfg.Port,
		tasks:       cfg.Tasks,
		categories:  cfg.Categories,
		interpreter: cfg.Interpreter,
		sender:      cfg.Sender,
		verifyToken: cfg.VerifyToken,
	}
	srv.mapHandlers()
	return srv, nil
}

// Run serves until ctx is cancelled, then drains with a short grace period.
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	s.logger.Info("http server started", zap.Int("port", s.port))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
