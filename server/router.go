package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller mounts its routes on a versioned route group.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router owns the gin engine and the controllers served under BaseURL.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	logger      logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      logrus.FieldLogger // nil means logrus.StandardLogger()
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      logger,
	}
}

// Handler builds the engine: recovery, request logging, and every
// controller under {baseURL}/v1.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.logger))

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}
	return router
}

// Run serves Handler on the configured address until it fails.
func (r *Router) Run() error {
	r.logger.WithField("addr", r.addr).Info("http server listening")
	return http.ListenAndServe(r.addr, r.Handler())
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(began).String(),
		})
		if len(ctx.Errors) > 0 {
			entry.Warn(ctx.Errors.String())
			return
		}
		entry.Debug("request served")
	}
}
