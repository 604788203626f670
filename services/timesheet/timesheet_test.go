package timesheet

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"slopeline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimesheetRepo is an in-memory TimesheetRepository.
type fakeTimesheetRepo struct {
	mu       sync.Mutex
	sessions []models.WorkSession
	nextID   int
}

func (f *fakeTimesheetRepo) Create(ctx context.Context, ws models.WorkSession) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ws.ID = fmt.Sprintf("ws-%d", f.nextID)
	ws.Status = models.WorkSessionActive
	f.sessions = append(f.sessions, ws)
	return ws.ID, nil
}

func (f *fakeTimesheetRepo) GetByID(ctx context.Context, id string) (*models.WorkSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ws := range f.sessions {
		if ws.ID == id {
			return &ws, nil
		}
	}
	return nil, nil
}

func (f *fakeTimesheetRepo) GetActive(ctx context.Context, instructorID string) (*models.WorkSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ws := range f.sessions {
		if ws.InstructorID == instructorID && ws.Status == models.WorkSessionActive {
			return &ws, nil
		}
	}
	return nil, nil
}

func (f *fakeTimesheetRepo) Complete(ctx context.Context, id string, clockOut int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].ClockOut = clockOut
			f.sessions[i].Status = models.WorkSessionCompleted
			return nil
		}
	}
	return nil
}

func (f *fakeTimesheetRepo) ListByInstructor(ctx context.Context, instructorID string) ([]models.WorkSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.WorkSession
	for _, ws := range f.sessions {
		if ws.InstructorID == instructorID {
			out = append(out, ws)
		}
	}
	return out, nil
}

func (f *fakeTimesheetRepo) EnsureIndexes() error { return nil }

func at(hour, minute int) time.Time {
	return time.Date(2025, time.February, 25, hour, minute, 0, 0, time.UTC)
}

func TestClockInThenOut(t *testing.T) {
	repo := &fakeTimesheetRepo{}
	svc, err := NewDefaultTimesheetService(repo, nil)
	require.NoError(t, err)
	ctx := context.Background()

	ws, err := svc.ClockIn(ctx, "inst-1", at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, "2025-02-25", ws.Date)
	assert.Equal(t, 9*60, ws.ClockIn)
	assert.Equal(t, models.WorkSessionActive, ws.Status)

	done, err := svc.ClockOut(ctx, "inst-1", at(15, 30))
	require.NoError(t, err)
	assert.Equal(t, 15*60+30, done.ClockOut)
	assert.Equal(t, models.WorkSessionCompleted, done.Status)

	sessions, err := svc.ListSessions(ctx, "inst-1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, models.WorkSessionCompleted, sessions[0].Status)
}

func TestClockInTwiceRejected(t *testing.T) {
	repo := &fakeTimesheetRepo{}
	svc, err := NewDefaultTimesheetService(repo, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.ClockIn(ctx, "inst-1", at(9, 0))
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, "inst-1", at(10, 0))
	assert.ErrorContains(t, err, "already clocked in")
}

func TestClockOutWithoutActiveSession(t *testing.T) {
	repo := &fakeTimesheetRepo{}
	svc, err := NewDefaultTimesheetService(repo, nil)
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "inst-1", at(15, 0))
	assert.ErrorContains(t, err, "no active work session")
}

func TestClockOutBeforeClockInRejected(t *testing.T) {
	repo := &fakeTimesheetRepo{}
	svc, err := NewDefaultTimesheetService(repo, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.ClockIn(ctx, "inst-1", at(9, 0))
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, "inst-1", at(9, 0))
	assert.Error(t, err, "equal clock-out must be rejected")

	_, err = svc.ClockOut(ctx, "inst-1", at(8, 0))
	assert.Error(t, err)
}

func TestMissingInstructorID(t *testing.T) {
	svc, err := NewDefaultTimesheetService(&fakeTimesheetRepo{}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.ClockIn(ctx, "", at(9, 0))
	assert.Error(t, err)
	_, err = svc.ClockOut(ctx, "", at(15, 0))
	assert.Error(t, err)
	_, err = svc.ListSessions(ctx, "")
	assert.Error(t, err)
}
