package instructor

import (
	"context"
	"fmt"
	"time"

	"slopeline/models"
	"slopeline/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a new instructor account and signs them in.
func (s *DefaultInstructorService) Register(ctx context.Context, req RegistrationRequest) (*AuthResponse, error) {
	if existing, _ := s.Repo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	inst := models.Instructor{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Disciplines:  req.Disciplines,
		Resort:       req.Resort,
		HourlyRate:   req.HourlyRate,
		Currency:     req.Currency,
		Status:       "pending",
	}
	id, err := s.Repo.Create(ctx, inst)
	if err != nil {
		return nil, fmt.Errorf("failed to register instructor: %w", err)
	}
	inst.ID = id

	return s.issueToken(ctx, &inst)
}

// Authenticate verifies credentials and returns a fresh token.
func (s *DefaultInstructorService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	inst, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(inst.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return s.issueToken(ctx, inst)
}

func (s *DefaultInstructorService) issueToken(ctx context.Context, inst *models.Instructor) (*AuthResponse, error) {
	token, err := utils.GenerateToken(inst.ID, inst.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	inst.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, inst); err != nil {
		utils.GetLogger().Warn("failed to persist token hash",
			zap.String("instructorId", inst.ID), zap.Error(err))
	}

	return &AuthResponse{Instructor: inst, Token: token}, nil
}

// GetByID fetches one instructor.
func (s *DefaultInstructorService) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateFCMToken stores the device token used for push notifications.
func (s *DefaultInstructorService) UpdateFCMToken(ctx context.Context, id, token string) error {
	inst, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	inst.FCMToken = token
	return s.Repo.Update(ctx, inst)
}
