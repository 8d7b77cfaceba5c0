package handlers

import (
	"smart_climate/internal/logger"
	"smart_climate/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Minimal WebSocket connection (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerClimateRoutes(api)
		h.registerPreferenceRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerClimateRoutes(api *gin.RouterGroup) {
	climate := api.Group("/climate")
	{
		// Body example: {"reading":{"temperature_c":28,"humidity_pct":55,"aqi":120},"occupancy":"OCCUPIED"}
		climate.POST("/evaluate", h.evaluate)
		climate.GET("/state", h.getState)
		climate.PUT("/occupancy", h.setOccupancy)
	}
}

func (h *Handler) registerPreferenceRoutes(api *gin.RouterGroup) {
	prefs := api.Group("/preferences")
	{
		prefs.GET("", h.getPreferences)
		prefs.PUT("", h.updatePreferences)
		prefs.GET("/recommend", h.recommendPreferences)
		prefs.POST("/recommend/apply", h.applyRecommended)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
