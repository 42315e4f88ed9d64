package handlers

import (
	"chargebench/internal/clock"
	"chargebench/internal/logger"
	"chargebench/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "chargebench/docs" // registers the OpenAPI document
)

// BenchInfo describes the bench for the /info endpoint.
type BenchInfo struct {
	Project     string `json:"project"`
	Description string `json:"description"`
	ChargeLine  int    `json:"charge_line"`
	APIVersion  string `json:"api_version"`
}

// Handler wires the HTTP layer to services, the uptime clock and logging.
type Handler struct {
	services *service.Service
	clk      clock.Clock
	info     BenchInfo
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, clk clock.Clock, info BenchInfo, log *logger.Logger) *Handler {
	return &Handler{services: services, clk: clk, info: info, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Root redirects to the interactive API docs, like the bench firmware.
	router.GET("/", h.root)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Control endpoints
	router.GET("/charge", h.charge)
	router.POST("/stop", h.stop)

	// Status/info endpoints
	router.GET("/state", h.state)
	router.GET("/health", h.health)
	router.GET("/info", h.benchInfo)

	h.registerLogRoutes(router)

	// Minimal WebSocket connection (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) registerLogRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/logs", h.getLogs)
	}
}
