// File: services/schedule/calendar.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slopeline/models"
	"slopeline/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// BuildMonthGrid returns the month's days padded to whole Sunday-start weeks,
// so the first cell is always a Sunday and the last a Saturday. Leading and
// trailing cells belong to the neighbouring months and are marked accordingly.
// No I/O happens here; lessons and availability are populated by LoadMonth.
func BuildMonthGrid(year int, month time.Month, today time.Time) []models.CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))
	todayStr := today.Format(dateLayout)

	var days []models.CalendarDay
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(dateLayout)
		days = append(days, models.CalendarDay{
			Date:           dateStr,
			IsCurrentMonth: d.Month() == month,
			IsToday:        dateStr == todayStr,
		})
	}
	return days
}

// LoadMonth assembles the padded month grid for an instructor with each day's
// lessons, availability windows and resolved open slots. Per-day lookups are
// fanned out concurrently and joined before slot resolution; the grid is
// recomputed wholesale on every load and cached briefly in Redis.
func (s *DefaultScheduleService) LoadMonth(ctx context.Context, instructorID string, year int, month time.Month) ([]models.CalendarDay, error) {
	logger := utils.GetLogger()
	cacheKey := fmt.Sprintf("%s%s:%04d-%02d", utils.CalendarCachePrefix, instructorID, year, month)

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []models.CalendarDay
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	days := BuildMonthGrid(year, month, s.now())

	g, gctx := errgroup.WithContext(ctx)
	for i := range days {
		day := &days[i]
		g.Go(func() error {
			lessons, err := s.Lessons.ListByInstructorAndDate(gctx, instructorID, day.Date)
			if err != nil {
				return fmt.Errorf("lessons for %s: %w", day.Date, err)
			}
			windows, err := s.Availability.ListByInstructorAndDate(gctx, instructorID, day.Date)
			if err != nil {
				return fmt.Errorf("availability for %s: %w", day.Date, err)
			}
			day.Lessons = lessons
			day.Availability = windows
			day.OpenSlots = ResolveOpenSlots(lessons, windows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("failed to load calendar month",
			zap.String("instructorId", instructorID), zap.Error(err))
		return nil, ErrLoadFailed
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(days); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, utils.CalendarCacheTTL).Err(); err != nil {
				logger.Warn("calendar cache write failed", zap.Error(err))
			}
		}
	}

	return days, nil
}

// DaySlots resolves the currently bookable slots for one instructor-day.
func (s *DefaultScheduleService) DaySlots(ctx context.Context, instructorID, date string) ([]models.SessionSlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	var (
		lessons []models.LessonSession
		windows []models.AvailabilityWindow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lessons, err = s.Lessons.ListByInstructorAndDate(gctx, instructorID, date)
		return err
	})
	g.Go(func() error {
		var err error
		windows, err = s.Availability.ListByInstructorAndDate(gctx, instructorID, date)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.GetLogger().Error("failed to load day slots",
			zap.String("instructorId", instructorID), zap.String("date", date), zap.Error(err))
		return nil, ErrLoadFailed
	}

	return ResolveOpenSlots(lessons, windows), nil
}

// ListAvailability returns every persisted window for the instructor.
func (s *DefaultScheduleService) ListAvailability(ctx context.Context, instructorID string) ([]models.AvailabilityWindow, error) {
	if instructorID == "" {
		return nil, fmt.Errorf("missing instructor id")
	}
	windows, err := s.Availability.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, ErrLoadFailed
	}
	return windows, nil
}
