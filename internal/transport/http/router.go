// Package http serves the simulation service as HTTP/JSON through gin.
// Handlers call the same service implementation as gRPC, so validation and
// error mapping behave identically on both transports.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

const healthPath = "/healthz"

// RouterConfig holds the HTTP-only settings.
type RouterConfig struct {
	AllowedOrigins []string
	RateLimiter    *RateLimiter // nil disables rate limiting
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(service pb.SimulationServiceServer, cfg RouterConfig, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Middleware())
	}

	router.GET(healthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	simulations := NewSimulationHandler(service)
	events := NewEventsHandler(service)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulations", simulations.Simulate)
		v1.POST("/simulations/compare", simulations.Compare)
		v1.GET("/simulations", simulations.List)
		v1.GET("/simulations/:id", simulations.Get)
		v1.GET("/events", events.List)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
