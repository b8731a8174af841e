package server

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDKey = "request_id"

// RouterDependencies are the collaborators of NewRouter.
type RouterDependencies struct {
	Handlers *Handlers
	// AllowedOrigins restricts CORS; empty allows every origin.
	AllowedOrigins []string
}

// NewRouter wires middleware and routes.
func NewRouter(logger *slog.Logger, deps RouterDependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger))

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsCfg))

	r.GET("/route", deps.Handlers.HandleRoute)
	r.GET("/hops", deps.Handlers.HandleHops)
	r.GET("/nodes", deps.Handlers.HandleNodes)
	r.GET("/health", deps.Handlers.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// requestID propagates X-Request-ID, generating one when absent.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
