package handlers

import (
	"net/http"

	"slopeline/services/instructor"
	"slopeline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InstructorHandler exposes instructor account endpoints.
type InstructorHandler struct {
	Service instructor.InstructorService
}

func NewInstructorHandler(svc instructor.InstructorService) *InstructorHandler {
	return &InstructorHandler{Service: svc}
}

// RegisterInstructorHandler creates a new instructor account.
func (h *InstructorHandler) RegisterInstructorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req instructor.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to register", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AuthenticateInstructorHandler signs an instructor in.
func (h *InstructorHandler) AuthenticateInstructorHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInstructorByIDHandler returns one instructor's public profile.
func (h *InstructorHandler) GetInstructorByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing instructor ID in path"})
		return
	}

	inst, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"instructor": inst})
}

// UpdateFCMTokenHandler stores the device token for push notifications.
func (h *InstructorHandler) UpdateFCMTokenHandler(c *gin.Context) {
	instructorID := authedInstructorID(c)
	if instructorID == "" {
		return
	}

	var body struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token in request body"})
		return
	}

	if err := h.Service.UpdateFCMToken(c.Request.Context(), instructorID, body.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token updated"})
}
