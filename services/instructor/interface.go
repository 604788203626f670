package instructor

import (
	"context"
	"fmt"

	instructorRepo "slopeline/database/repository/instructor"
	"slopeline/models"
)

// InstructorService manages instructor accounts and authentication.
type InstructorService interface {
	Register(ctx context.Context, req RegistrationRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Instructor, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}

// RegistrationRequest is the signup payload.
type RegistrationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Disciplines []string `json:"disciplines" binding:"required"`
	Resort      string   `json:"resort,omitempty"`
	HourlyRate  float64  `json:"hourlyRate,omitempty"`
	Currency    string   `json:"currency,omitempty"`
}

// AuthResponse returns the instructor together with a signed token.
type AuthResponse struct {
	Instructor *models.Instructor `json:"instructor"`
	Token      string             `json:"token"`
}

// DefaultInstructorService is the production implementation.
type DefaultInstructorService struct {
	Repo instructorRepo.InstructorRepository
}

func NewDefaultInstructorService(repo instructorRepo.InstructorRepository) (*DefaultInstructorService, error) {
	if repo == nil {
		return nil, fmt.Errorf("instructor service initialization error: repository is nil")
	}
	return &DefaultInstructorService{Repo: repo}, nil
}
