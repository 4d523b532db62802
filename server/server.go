// Package server runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/handler"
	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/resp"
	"github.com/ncobase/todosheet/version"
)

// Server hosts the HTTP API.
type Server struct {
	cfg     *config.Config
	logger  *logger.Logger
	handler *handler.Handler
}

// New creates the server.
func New(cfg *config.Config, log *logger.Logger, h *handler.Handler) *Server {
	return &Server{cfg: cfg, logger: log, handler: h}
}

// Run starts the server and blocks until SIGINT or SIGTERM, then
// drains in-flight requests before returning.
func (s *Server) Run() error {
	switch s.cfg.RunMode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(s.cfg.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := s.buildEngine()

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.Info(context.Background(), "server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(context.Background(), "server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info(context.Background(), "shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	s.logger.Info(context.Background(), "server exited")
	return nil
}

func (s *Server) buildEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.traceMiddleware())
	r.Use(s.loggerMiddleware())

	r.GET("/health", func(c *gin.Context) {
		resp.Success(c.Writer, gin.H{
			"name":    s.cfg.AppName,
			"status":  "ok",
			"version": version.Version,
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	r.GET("/version", func(c *gin.Context) {
		resp.Success(c.Writer, version.GetVersionInfo())
	})

	s.handler.RegisterRoutes(r)
	return r
}

// traceMiddleware assigns every request a trace id and echoes it back
// in the X-Trace-ID header.
func (s *Server) traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, traceID := logger.EnsureTraceID(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
	}
}
