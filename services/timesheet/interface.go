package timesheet

import (
	"context"
	"fmt"
	"time"

	timesheetRepo "slopeline/database/repository/timesheet"
	"slopeline/models"

	"github.com/hibiken/asynq"
)

// TypeDeriveAvailability is the asynq task queued when a work session
// completes; the worker turns it into an availability window.
const TypeDeriveAvailability = "timesheet:derive"

// TimesheetService tracks instructor work sessions. Completed sessions feed
// the availability store through a background task.
type TimesheetService interface {
	ClockIn(ctx context.Context, instructorID string, at time.Time) (*models.WorkSession, error)
	ClockOut(ctx context.Context, instructorID string, at time.Time) (*models.WorkSession, error)
	ListSessions(ctx context.Context, instructorID string) ([]models.WorkSession, error)
}

// DefaultTimesheetService is the production implementation.
type DefaultTimesheetService struct {
	Repo        timesheetRepo.TimesheetRepository
	AsynqClient *asynq.Client
}

func NewDefaultTimesheetService(repo timesheetRepo.TimesheetRepository, asynqClient *asynq.Client) (*DefaultTimesheetService, error) {
	if repo == nil {
		return nil, fmt.Errorf("timesheet service initialization error: repository is nil")
	}
	return &DefaultTimesheetService{Repo: repo, AsynqClient: asynqClient}, nil
}
