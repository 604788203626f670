package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"slopeline/services/schedule"
	"slopeline/utils"

	"github.com/gin-gonic/gin"
)

// GetCalendarHandler returns the padded month grid with resolved slots for an
// instructor. Public: students browse instructor calendars before booking.
func (h *ScheduleHandler) GetCalendarHandler(c *gin.Context) {
	instructorID := c.Param("id")
	if instructorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing instructor ID in path"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid year in path", c.Param("year"))
		return
	}
	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid month in path", c.Param("month"))
		return
	}

	days, err := h.Service.LoadMonth(c.Request.Context(), instructorID, year, time.Month(monthNum))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetDaySlotsHandler returns the open slots for one instructor-day.
func (h *ScheduleHandler) GetDaySlotsHandler(c *gin.Context) {
	instructorID := c.Param("id")
	date := c.Param("date")
	if instructorID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing instructor ID or date in path"})
		return
	}

	slots, err := h.Service.DaySlots(c.Request.Context(), instructorID, date)
	if err != nil {
		if errors.Is(err, schedule.ErrLoadFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load slots"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
