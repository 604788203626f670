// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	availabilityRepo "slopeline/database/repository/availability"
	lessonRepo "slopeline/database/repository/lesson"
	"slopeline/models"

	"github.com/go-redis/redis/v8"
)

// ScheduleService is the availability and slot-scheduling core: it resolves
// bookable slots per day, assembles padded month grids, and reconciles edited
// availability selections against the persisted set.
type ScheduleService interface {
	DaySlots(ctx context.Context, instructorID, date string) ([]models.SessionSlot, error)
	LoadMonth(ctx context.Context, instructorID string, year int, month time.Month) ([]models.CalendarDay, error)
	ListAvailability(ctx context.Context, instructorID string) ([]models.AvailabilityWindow, error)
	UpdateAvailability(ctx context.Context, req models.UpdateAvailabilityRequest) error
	ApplyWeeklyPattern(ctx context.Context, req models.WeeklyPatternRequest) error
	AddDerivedWindow(ctx context.Context, instructorID, date string, start, end int) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Availability availabilityRepo.AvailabilityRepository
	Lessons      lessonRepo.LessonRepository
	Cache        *redis.Client    // optional month-grid cache
	Now          func() time.Time // injectable for tests
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
