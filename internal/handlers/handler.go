package handlers

import (
	_ "controlling_dishwasher/docs"
	"controlling_dishwasher/internal/logger"
	"controlling_dishwasher/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

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
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// live appliance snapshots over the same port
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
		h.registerDishwasherRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerDishwasherRoutes(api *gin.RouterGroup) {
	dw := api.Group("/dishwasher")
	{
		// Body example: {"program":"ECO","tablets_used":true,"fill_level":"FULL"}
		dw.POST("/start", h.startCycle)
		dw.GET("/programs", h.listPrograms)
		dw.GET("/state", h.getState)

		dw.POST("/door/open", h.openDoor)
		dw.POST("/door/close", h.closeDoor)

		dw.POST("/filter/clean", h.cleanFilter)
		dw.PUT("/filter", h.setFilterCapacity)

		dw.POST("/faults", h.injectFault)
		dw.DELETE("/faults", h.clearFaults)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
