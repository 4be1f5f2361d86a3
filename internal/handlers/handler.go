package handlers

import (
	"errors"
	"net/http"

	_ "github.com/mikasr411/RouteBoss/docs"
	"github.com/mikasr411/RouteBoss/internal/logger"
	"github.com/mikasr411/RouteBoss/internal/service"

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

	// WebSocket worklist feed (HTTP upgrade) — same port
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
		h.registerCustomerRoutes(api)
		h.registerEquipmentRoutes(api)
		h.registerWorklistRoutes(api)
	}
}

func (h *Handler) registerCustomerRoutes(api *gin.RouterGroup) {
	customers := api.Group("/customers")
	{
		customers.GET("/", h.listCustomers)
		customers.POST("/", h.createCustomer)
		customers.POST("/import", h.importCustomers)
		customers.POST("/geocode", h.geocodeCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
		customers.POST("/:id/log-service", h.logCustomerService)
		customers.POST("/:id/skip-cycle", h.skipCustomerCycle)
		customers.PUT("/:id/frequency", h.setCustomerFrequency)
		customers.PUT("/:id/next-service-date", h.setCustomerNextServiceDate)
		customers.PUT("/:id/route-selection", h.setCustomerRouteSelection)
		customers.POST("/:id/message-preview", h.previewCustomerMessage)
	}
}

func (h *Handler) registerEquipmentRoutes(api *gin.RouterGroup) {
	equipment := api.Group("/equipment")
	{
		equipment.GET("/", h.listEquipment)
		equipment.POST("/", h.createEquipment)
		equipment.GET("/:id", h.getEquipment)
		equipment.DELETE("/:id", h.deleteEquipment)
		equipment.POST("/:id/hours", h.addEquipmentHours)
		equipment.POST("/:id/service-log", h.logEquipmentService)
		equipment.GET("/:id/reminders", h.listReminders)
		equipment.POST("/:id/reminders", h.addReminder)
		equipment.GET("/:id/costs", h.getEquipmentCosts)
	}
	reminders := api.Group("/reminders")
	{
		reminders.PUT("/:id", h.updateReminder)
		reminders.DELETE("/:id", h.deleteReminder)
	}
	api.GET("/service-log", h.getServiceLog)
}

func (h *Handler) registerWorklistRoutes(api *gin.RouterGroup) {
	worklist := api.Group("/worklist")
	{
		worklist.GET("/", h.getWorklist)
		worklist.GET("/due-customers", h.getDueCustomers)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service errors onto HTTP statuses: rejected input is
// a 400, a missing entity is a 404, anything else is a 500 with the
// detail kept out of the response body.
func (h *Handler) respondError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
