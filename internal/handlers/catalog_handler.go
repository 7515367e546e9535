package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
	"github.com/swifttransit/bus-ticket-backend/internal/services"
)

// CatalogHandler handles admin reference-data endpoints for routes, buses
// and schedules
type CatalogHandler struct {
	catalogService *services.CatalogService
	logger         *logrus.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// CreateRoute handles POST /api/v1/admin/routes
func (h *CatalogHandler) CreateRoute(c *gin.Context) {
	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	route, err := h.catalogService.CreateRoute(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   route,
	})
}

// ListRoutes handles GET /api/v1/routes
func (h *CatalogHandler) ListRoutes(c *gin.Context) {
	routes, err := h.catalogService.ListRoutes()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"routes": routes,
			"count":  len(routes),
		},
	})
}

// CreateBus handles POST /api/v1/admin/buses
func (h *CatalogHandler) CreateBus(c *gin.Context) {
	var req models.CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	bus, err := h.catalogService.CreateBus(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   bus,
	})
}

// ListBuses handles GET /api/v1/admin/buses
func (h *CatalogHandler) ListBuses(c *gin.Context) {
	buses, err := h.catalogService.ListBuses()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"buses": buses,
			"count": len(buses),
		},
	})
}

// CreateSchedule handles POST /api/v1/admin/schedules
func (h *CatalogHandler) CreateSchedule(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	schedule, err := h.catalogService.CreateSchedule(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   schedule,
	})
}

// ListSchedules handles GET /api/v1/admin/schedules
func (h *CatalogHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.catalogService.ListSchedules()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"schedules": schedules,
			"count":     len(schedules),
		},
	})
}
