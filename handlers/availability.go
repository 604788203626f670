package handlers

import (
	"errors"
	"net/http"

	"slopeline/models"
	"slopeline/services/schedule"
	"slopeline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the availability and calendar endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// UpdateAvailabilityHandler reconciles the instructor's edited date selection.
func (h *ScheduleHandler) UpdateAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	instructorID := authedInstructorID(c)
	if instructorID == "" {
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.InstructorID = instructorID

	if err := h.Service.UpdateAvailability(c.Request.Context(), req); err != nil {
		if errors.Is(err, schedule.ErrUpdateFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability update", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// ApplyWeeklyPatternHandler expands a recurring pattern and reconciles it.
func (h *ScheduleHandler) ApplyWeeklyPatternHandler(c *gin.Context) {
	logger := utils.GetLogger()

	instructorID := authedInstructorID(c)
	if instructorID == "" {
		return
	}

	var req models.WeeklyPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid weekly pattern request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.InstructorID = instructorID

	if err := h.Service.ApplyWeeklyPattern(c.Request.Context(), req); err != nil {
		if errors.Is(err, schedule.ErrUpdateFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekly pattern", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weekly availability applied"})
}

// ListAvailabilityHandler returns every persisted window for the instructor.
func (h *ScheduleHandler) ListAvailabilityHandler(c *gin.Context) {
	instructorID := authedInstructorID(c)
	if instructorID == "" {
		return
	}

	windows, err := h.Service.ListAvailability(c.Request.Context(), instructorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": windows})
}

// authedInstructorID pulls the authenticated instructor from the context,
// writing the error response itself when absent.
func authedInstructorID(c *gin.Context) string {
	value, exists := c.Get("instructorID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Instructor not authenticated"})
		return ""
	}
	id, ok := value.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid instructor ID in context"})
		return ""
	}
	return id
}
