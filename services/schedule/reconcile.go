// File: services/schedule/reconcile.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"slopeline/models"
	"slopeline/utils"

	"go.uber.org/zap"
)

// Generic errors surfaced to callers when persistence fails. Validation
// failures keep their descriptive messages and are never retried.
var (
	ErrUpdateFailed = errors.New("failed to update availability")
	ErrLoadFailed   = errors.New("failed to load availability")
)

// ParseClock converts an "HH:MM" string into minutes from midnight. Every
// character is checked explicitly: no whitespace, signs, or trailing garbage.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("malformed time %q, want HH:MM", s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("malformed time %q, want HH:MM", s)
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return hh*60 + mm, nil
}

// FormatClock renders minutes from midnight back into "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DiffDates normalizes both sets to canonical date strings and returns the
// minimal mutation: toAdd = desired - persisted, toRemove = persisted - desired.
// Both results come back sorted so reconciliation batches are deterministic.
func DiffDates(desired, persisted []string) (toAdd, toRemove []string) {
	want := make(map[string]struct{}, len(desired))
	for _, d := range desired {
		want[normalizeDate(d)] = struct{}{}
	}
	have := make(map[string]struct{}, len(persisted))
	for _, d := range persisted {
		have[normalizeDate(d)] = struct{}{}
	}

	for d := range want {
		if _, ok := have[d]; !ok {
			toAdd = append(toAdd, d)
		}
	}
	for d := range have {
		if _, ok := want[d]; !ok {
			toRemove = append(toRemove, d)
		}
	}
	sort.Strings(toAdd)
	sort.Strings(toRemove)
	return toAdd, toRemove
}

// parseDate accepts exactly a canonical date string or an RFC3339 timestamp.
// Request validation uses this; anything else is rejected rather than coerced.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}

// normalizeDate strips any time component so date-only and timestamped inputs
// compare equal. Lenient on purpose: it also runs over persisted values, which
// validation never sees.
func normalizeDate(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dateLayout)
	}
	if len(s) > len(dateLayout) {
		return s[:len(dateLayout)]
	}
	return s
}

// validateUpdate runs every synchronous check before any persistence call.
// A failure rejects the whole batch; nothing is partially applied.
func validateUpdate(req models.UpdateAvailabilityRequest) (start, end int, err error) {
	if req.InstructorID == "" {
		return 0, 0, fmt.Errorf("missing instructor id")
	}
	if len(req.Dates) == 0 {
		return 0, 0, fmt.Errorf("no dates in scope")
	}
	for _, d := range req.Dates {
		if _, err := parseDate(d); err != nil {
			return 0, 0, fmt.Errorf("invalid date %q: %w", d, err)
		}
	}
	start, err = ParseClock(req.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseClock(req.EndTime)
	if err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, fmt.Errorf("start time %s must be before end time %s", req.StartTime, req.EndTime)
	}
	return start, end, nil
}

// UpdateAvailability reconciles the instructor's desired set of available
// dates against the persisted set and applies the minimal mutation as one
// batched write. Dates being added are defensively cleared inside the same
// batch so a date never holds two conflicting windows. There is no optimistic
// concurrency check between the read and the write; a second concurrent editor
// is a last-write-wins race.
func (s *DefaultScheduleService) UpdateAvailability(ctx context.Context, req models.UpdateAvailabilityRequest) error {
	logger := utils.GetLogger()

	start, end, err := validateUpdate(req)
	if err != nil {
		return err
	}

	persisted, err := s.Availability.ListDates(ctx, req.InstructorID)
	if err != nil {
		logger.Error("failed to read persisted availability dates",
			zap.String("instructorId", req.InstructorID), zap.Error(err))
		return ErrUpdateFailed
	}

	toAdd, toRemove := DiffDates(req.Dates, persisted)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		return nil
	}

	source := req.Source
	if source == "" {
		source = models.AvailabilitySourceManual
	}
	now := s.now()
	inserts := make([]models.AvailabilityWindow, 0, len(toAdd))
	for _, date := range toAdd {
		inserts = append(inserts, models.AvailabilityWindow{
			InstructorID: req.InstructorID,
			Date:         date,
			Start:        start,
			End:          end,
			Source:       source,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if err := s.Availability.BatchReplace(ctx, req.InstructorID, toRemove, inserts); err != nil {
		logger.Error("availability reconciliation failed",
			zap.String("instructorId", req.InstructorID),
			zap.Int("toAdd", len(toAdd)), zap.Int("toRemove", len(toRemove)),
			zap.Error(err))
		return ErrUpdateFailed
	}

	logger.Info("availability reconciled",
		zap.String("instructorId", req.InstructorID),
		zap.Int("added", len(toAdd)), zap.Int("removed", len(toRemove)))

	s.invalidateCalendarCache(ctx, req.InstructorID, append(toAdd, toRemove...))
	return nil
}

// ExpandWeeklyPattern expands a recurring weekly pattern into concrete dates
// over a horizon of whole weeks starting from (and including) from.
func ExpandWeeklyPattern(weekdays []time.Weekday, from time.Time, weeks int) []string {
	active := make(map[time.Weekday]struct{}, len(weekdays))
	for _, wd := range weekdays {
		active[wd] = struct{}{}
	}

	var dates []string
	for i := 0; i < weeks*7; i++ {
		d := from.AddDate(0, 0, i)
		if _, ok := active[d.Weekday()]; ok {
			dates = append(dates, d.Format(dateLayout))
		}
	}
	return dates
}

// ApplyWeeklyPattern expands the pattern into a desired date set and runs the
// same reconciliation as a manual multi-select edit.
func (s *DefaultScheduleService) ApplyWeeklyPattern(ctx context.Context, req models.WeeklyPatternRequest) error {
	if req.InstructorID == "" {
		return fmt.Errorf("missing instructor id")
	}
	if len(req.Weekdays) == 0 {
		return fmt.Errorf("no weekdays in pattern")
	}
	if req.Weeks < 1 {
		return fmt.Errorf("pattern horizon must be at least one week")
	}
	from, err := time.Parse(dateLayout, req.From)
	if err != nil {
		return fmt.Errorf("invalid pattern start %q: %w", req.From, err)
	}

	dates := ExpandWeeklyPattern(req.Weekdays, from, req.Weeks)
	if len(dates) == 0 {
		return fmt.Errorf("pattern expands to no dates")
	}

	return s.UpdateAvailability(ctx, models.UpdateAvailabilityRequest{
		InstructorID: req.InstructorID,
		Dates:        dates,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Source:       models.AvailabilitySourceManual,
	})
}

// AddDerivedWindow inserts a single availability window produced by a
// completed work session. It goes through the same validation and conflict
// rules as manual edits: a window overlapping an existing one on the date is
// dropped as already covered instead of creating a duplicate.
func (s *DefaultScheduleService) AddDerivedWindow(ctx context.Context, instructorID, date string, start, end int) error {
	logger := utils.GetLogger()

	if instructorID == "" {
		return fmt.Errorf("missing instructor id")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if start < 0 || end > 24*60 || start >= end {
		return fmt.Errorf("invalid window %s-%s", FormatClock(start), FormatClock(end))
	}

	existing, err := s.Availability.ListByInstructorAndDate(ctx, instructorID, date)
	if err != nil {
		logger.Error("failed to read availability for derived window",
			zap.String("instructorId", instructorID), zap.String("date", date), zap.Error(err))
		return ErrUpdateFailed
	}
	if HasConflict(existing, start, end) {
		logger.Info("derived window overlaps existing availability, skipping",
			zap.String("instructorId", instructorID), zap.String("date", date))
		return nil
	}

	now := s.now()
	_, err = s.Availability.Insert(ctx, models.AvailabilityWindow{
		InstructorID: instructorID,
		Date:         date,
		Start:        start,
		End:          end,
		Source:       models.AvailabilitySourceTimesheet,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logger.Error("failed to insert derived window",
			zap.String("instructorId", instructorID), zap.String("date", date), zap.Error(err))
		return ErrUpdateFailed
	}

	s.invalidateCalendarCache(ctx, instructorID, []string{date})
	return nil
}

const monthLayout = "2006-01"

// monthsTouching returns every cached month whose grid can display the given
// dates. Grids pad with up to six days of the neighbouring months, so a date
// near a month boundary also appears in the adjacent month's grid.
func monthsTouching(dates []string) []string {
	months := make(map[string]struct{})
	for _, d := range dates {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			continue
		}
		months[t.Format(monthLayout)] = struct{}{}

		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		if t.Day() <= 6 {
			months[first.AddDate(0, 0, -1).Format(monthLayout)] = struct{}{}
		}
		lastDay := first.AddDate(0, 1, -1).Day()
		if lastDay-t.Day() < 6 {
			months[first.AddDate(0, 1, 0).Format(monthLayout)] = struct{}{}
		}
	}

	out := make([]string, 0, len(months))
	for m := range months {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// invalidateCalendarCache drops cached month grids touched by the given dates,
// including adjacent months whose padded grids display them.
func (s *DefaultScheduleService) invalidateCalendarCache(ctx context.Context, instructorID string, dates []string) {
	if s.Cache == nil || len(dates) == 0 {
		return
	}
	months := monthsTouching(dates)
	if len(months) == 0 {
		return
	}
	keys := make([]string, 0, len(months))
	for _, m := range months {
		keys = append(keys, fmt.Sprintf("%s%s:%s", utils.CalendarCachePrefix, instructorID, m))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("calendar cache invalidation failed", zap.Error(err))
	}
}
