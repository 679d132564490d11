package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	if h.cfg.RateLimitPerSecond > 0 && h.cfg.RateLimitBurst > 0 {
		limiter := rate.NewLimiter(rate.Limit(h.cfg.RateLimitPerSecond), h.cfg.RateLimitBurst)
		protected.Use(RateLimitMiddleware(limiter, h.logger))
	}

	// Управление местами каталога
	places := protected.Group("/places")
	{
		places.POST("", h.createPlace)
		places.GET("", h.listPlaces)
		places.GET("/nearby", h.nearbyPlaces)
		places.GET("/:id", h.getPlace)
		places.PUT("/:id", h.updatePlace)
		places.DELETE("/:id", h.deletePlace)
		places.GET("/:id/stats", h.getStats)
	}

	// События устройств
	devices := protected.Group("/devices/:id")
	{
		devices.POST("/positions", h.submitPosition)
		devices.POST("/dismiss", h.dismiss)
		devices.POST("/lifecycle", h.lifecycle)
		devices.GET("/narration", h.getNarration)
		devices.POST("/narration/:action", h.controlNarration)
	}
}

// NewRouter собирает gin-роутер со служебными маршрутами и оборачивает его в CORS.
// health и metricsHandler могут быть nil.
func NewRouter(h *Handler, health *HealthChecker, metricsHandler http.Handler) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.logger))

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	if health != nil {
		health.Register(router)
	}
	if metricsHandler != nil && h.cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-API-Key", "Authorization"},
	})
	return corsHandler.Handler(router)
}
