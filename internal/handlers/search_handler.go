package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
	"github.com/swifttransit/bus-ticket-backend/internal/services"
)

// SearchHandler handles trip search and schedule detail endpoints
type SearchHandler struct {
	searchService *services.SearchService
	logger        *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *services.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search handles GET /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid query parameters: " + err.Error(),
		})
		return
	}

	results, err := h.searchService.Search(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"results": results,
			"count":   len(results),
		},
	})
}

// ScheduleDetail handles GET /api/v1/schedules/:id
func (h *SearchHandler) ScheduleDetail(c *gin.Context) {
	scheduleID := c.Param("id")
	travelDate := c.Query("travel_date")
	if travelDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "travel_date query parameter is required",
		})
		return
	}

	detail, err := h.searchService.ScheduleDetail(scheduleID, travelDate)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   detail,
	})
}
