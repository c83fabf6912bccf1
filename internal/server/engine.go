package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
	"github.com/xfwduke/blueking-dbm/internal/metrics"
	"github.com/xfwduke/blueking-dbm/internal/middleware"
	"github.com/xfwduke/blueking-dbm/internal/tracing"
	"github.com/xfwduke/blueking-dbm/swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// GetEngine returns a Gin engine with the middleware shared by all routes. Routes are registered by
// the packages owning them.
func GetEngine(logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(otelgin.Middleware(tracing.ServiceName))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger, "/health", "/metrics"))
	r.Use(metrics.Gin())
	r.Use(middleware.ErrorHandler())

	return r
}

// Redoc serves the API definition and its rendering using Redoc under router.
func Redoc(router *gin.RouterGroup) {
	router.GET("/swagger.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", swagger.Spec)
	})

	redocOpts := redocMiddleware.RedocOpts{
		BasePath: router.BasePath(),
		SpecURL:  "./swagger.yaml",
	}
	redocHandler := redocMiddleware.Redoc(redocOpts, nil)
	router.GET("/docs", gin.WrapH(redocHandler))
}
