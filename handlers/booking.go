package handlers

import (
	"net/http"

	"slopeline/models"
	"slopeline/services/booking"
	"slopeline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the lesson checkout endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookSlotHandler books one session slot for the authenticated student.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	userID, _ := userIDValue.(string)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.UserID = userID

	resp, err := h.Service.BookSlot(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to book slot", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to book slot", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lesson booked",
		"booking": resp,
	})
}

// ListMyLessonsHandler returns the authenticated student's lessons.
func (h *BookingHandler) ListMyLessonsHandler(c *gin.Context) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	userID, _ := userIDValue.(string)

	lessons, err := h.Service.ListStudentLessons(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lessons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

// CancelLessonHandler cancels a booked lesson, freeing its slot.
func (h *BookingHandler) CancelLessonHandler(c *gin.Context) {
	lessonID := c.Param("lessonID")
	if lessonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing lesson ID in path"})
		return
	}

	if err := h.Service.CancelLesson(c.Request.Context(), lessonID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel lesson", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson cancelled"})
}
