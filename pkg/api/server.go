// Package api exposes the worker's operational HTTP endpoints: a
// liveness health check and a queue health report. The API is optional;
// a worker without an HTTP port configured runs headless.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skiftkoll/skiftkoll/pkg/database"
	"github.com/skiftkoll/skiftkoll/pkg/queue"
)

// Server serves the operational endpoints for one worker process.
type Server struct {
	dbClient   *database.Client
	workerPool *queue.WorkerPool
	httpServer *http.Server
}

// NewServer creates the API server. workerPool may be nil, in which case
// the health check covers the database only.
func NewServer(dbClient *database.Client, workerPool *queue.WorkerPool) *Server {
	return &Server{
		dbClient:   dbClient,
		workerPool: workerPool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeaders())

	v1 := router.Group("/api/v1")
	v1.GET("/health", s.healthHandler)
	v1.GET("/system/queue-health", s.queueHealthHandler)

	return router
}

// Start begins serving on the given port. Blocks until the listener
// fails or Shutdown is called.
func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
