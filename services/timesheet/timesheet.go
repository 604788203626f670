package timesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slopeline/models"
	"slopeline/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ClockIn opens a new work session for the instructor. Only one session may
// be active at a time.
func (s *DefaultTimesheetService) ClockIn(ctx context.Context, instructorID string, at time.Time) (*models.WorkSession, error) {
	if instructorID == "" {
		return nil, fmt.Errorf("missing instructor id")
	}

	active, err := s.Repo.GetActive(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active session: %w", err)
	}
	if active != nil {
		return nil, fmt.Errorf("instructor already clocked in since %s", clock(active.ClockIn))
	}

	ws := models.WorkSession{
		InstructorID: instructorID,
		Date:         at.Format("2006-01-02"),
		ClockIn:      at.Hour()*60 + at.Minute(),
	}
	id, err := s.Repo.Create(ctx, ws)
	if err != nil {
		return nil, fmt.Errorf("failed to clock in: %w", err)
	}
	ws.ID = id
	ws.Status = models.WorkSessionActive
	return &ws, nil
}

// ClockOut completes the active work session and queues derivation of an
// availability window from the worked range. A failed enqueue is logged but
// does not fail the clock-out.
func (s *DefaultTimesheetService) ClockOut(ctx context.Context, instructorID string, at time.Time) (*models.WorkSession, error) {
	logger := utils.GetLogger()

	if instructorID == "" {
		return nil, fmt.Errorf("missing instructor id")
	}

	active, err := s.Repo.GetActive(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active session: %w", err)
	}
	if active == nil {
		return nil, fmt.Errorf("no active work session")
	}

	clockOut := at.Hour()*60 + at.Minute()
	if clockOut <= active.ClockIn {
		return nil, fmt.Errorf("clock-out %s must be after clock-in %s", clock(clockOut), clock(active.ClockIn))
	}

	if err := s.Repo.Complete(ctx, active.ID, clockOut); err != nil {
		return nil, fmt.Errorf("failed to clock out: %w", err)
	}
	active.ClockOut = clockOut
	active.Status = models.WorkSessionCompleted

	if s.AsynqClient != nil {
		payload, err := json.Marshal(models.DeriveAvailabilityPayload{
			WorkSessionID: active.ID,
			InstructorID:  instructorID,
			Date:          active.Date,
			ClockIn:       active.ClockIn,
			ClockOut:      clockOut,
		})
		if err == nil {
			task := asynq.NewTask(TypeDeriveAvailability, payload)
			if _, err := s.AsynqClient.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
				logger.Error("failed to enqueue availability derivation",
					zap.String("workSessionId", active.ID), zap.Error(err))
			}
		}
	}

	return active, nil
}

// ListSessions returns the instructor's timesheet, newest first.
func (s *DefaultTimesheetService) ListSessions(ctx context.Context, instructorID string) ([]models.WorkSession, error) {
	if instructorID == "" {
		return nil, fmt.Errorf("missing instructor id")
	}
	return s.Repo.ListByInstructor(ctx, instructorID)
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
