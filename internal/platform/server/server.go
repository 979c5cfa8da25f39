package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar hooks a module's handlers into the versioned API group.
type RouteRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// Server wraps the HTTP engine and its lifecycle.
type Server struct {
	engine *gin.Engine
	log    *zap.Logger
	port   string
	server *http.Server
}

// New builds the gin engine with recovery, zap request logging and CORS,
// applies any extra middleware (tenant resolution lives there), and
// registers every module's routes under /api/v1.
func New(log *zap.Logger, port, mode string, middleware []gin.HandlerFunc, registrars ...RouteRegistrar) *Server {
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(cors())
	r.Use(middleware...)

	v1 := r.Group("/api/v1")
	for _, reg := range registrars {
		reg.RegisterRoutes(v1)
	}
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	return &Server{engine: r, log: log, port: port}
}

// Run starts listening; it blocks until the listener stops.
func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.engine,
	}
	s.log.Info("http server started", zap.String("port", s.port))
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Engine exposes the router, mainly for httptest in handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.Info("http request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("cost", time.Since(start)),
		)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Company-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
