package handlers

import (
	"net/http"
	"time"

	"slopeline/services/timesheet"
	"slopeline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimesheetHandler exposes the work-session tracking endpoints.
type TimesheetHandler struct {
	Service timesheet.TimesheetService
}

func NewTimesheetHandler(svc timesheet.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{Service: svc}
}

// ClockInHandler opens a work session for the authenticated instructor.
func (h *TimesheetHandler) ClockInHandler(c *gin.Context) {
	instructorID := authedInstructorID(c)
	if instructorID == "" {
		return
	}

	ws, err := h.Service.ClockIn(c.Request.Context(), instructorID, time.Now())
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to clock in", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Clocked in", "workSession": ws})
}

// ClockOutHandler completes the active work session; availability derivation
// runs in the background afterwards.
func (h *TimesheetHandler) ClockOutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	instructorID := authedInstructorID(c)
	if instructorID == "" {
		return
	}

	ws, err := h.Service.ClockOut(c.Request.Context(), instructorID, time.Now())
	if err != nil {
		logger.Error("Failed to clock out", zap.String("instructorId", instructorID), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to clock out", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Clocked out", "workSession": ws})
}

// ListWorkSessionsHandler returns the instructor's timesheet.
func (h *TimesheetHandler) ListWorkSessionsHandler(c *gin.Context) {
	instructorID := authedInstructorID(c)
	if instructorID == "" {
		return
	}

	sessions, err := h.Service.ListSessions(c.Request.Context(), instructorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timesheet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workSessions": sessions})
}
