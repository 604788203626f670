// File: services/schedule/calendar_test.go
package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"slopeline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridPadsToWholeWeeks(t *testing.T) {
	today := time.Date(2025, time.February, 25, 10, 0, 0, 0, time.UTC)

	for month := time.January; month <= time.December; month++ {
		days := BuildMonthGrid(2025, month, today)

		require.NotEmpty(t, days, "month %s", month)
		assert.Zero(t, len(days)%7, "month %s should span whole weeks, got %d days", month, len(days))

		first, err := time.Parse("2006-01-02", days[0].Date)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, first.Weekday(), "month %s should start on Sunday", month)

		last, err := time.Parse("2006-01-02", days[len(days)-1].Date)
		require.NoError(t, err)
		assert.Equal(t, time.Saturday, last.Weekday(), "month %s should end on Saturday", month)
	}
}

func TestBuildMonthGridFebruary2025(t *testing.T) {
	// February 2025 starts on a Saturday and ends on a Friday, so the grid
	// needs padding on both sides.
	today := time.Date(2025, time.February, 25, 10, 0, 0, 0, time.UTC)
	days := BuildMonthGrid(2025, time.February, today)

	require.Len(t, days, 35)
	assert.Equal(t, "2025-01-26", days[0].Date)
	assert.False(t, days[0].IsCurrentMonth)
	assert.Equal(t, "2025-02-01", days[6].Date)
	assert.True(t, days[6].IsCurrentMonth)
	assert.Equal(t, "2025-03-01", days[len(days)-1].Date)
	assert.False(t, days[len(days)-1].IsCurrentMonth)

	var todayCount int
	for _, d := range days {
		if d.IsToday {
			todayCount++
			assert.Equal(t, "2025-02-25", d.Date)
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestBuildMonthGridTodayOutsideMonth(t *testing.T) {
	today := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)
	days := BuildMonthGrid(2025, time.February, today)
	for _, d := range days {
		assert.False(t, d.IsToday, "day %s", d.Date)
	}
}

func TestLoadMonthPopulatesDays(t *testing.T) {
	avail := &fakeAvailabilityRepo{
		windows: []models.AvailabilityWindow{
			{InstructorID: "inst-1", Date: "2025-02-25", Start: 540, End: 720, Source: models.AvailabilitySourceManual},
		},
	}
	lessons := &fakeLessonRepo{
		lessons: map[string][]models.LessonSession{
			"2025-02-26": {lesson(models.SlotFullDay, models.LessonStatusScheduled)},
		},
	}
	svc := &DefaultScheduleService{
		Availability: avail,
		Lessons:      lessons,
		Now:          func() time.Time { return time.Date(2025, time.February, 25, 9, 0, 0, 0, time.UTC) },
	}

	days, err := svc.LoadMonth(context.Background(), "inst-1", 2025, time.February)
	require.NoError(t, err)

	byDate := make(map[string]models.CalendarDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	constrained := byDate["2025-02-25"]
	assert.Len(t, constrained.Availability, 1)
	assert.Equal(t, []models.SessionSlot{models.SlotMorning}, constrained.OpenSlots)

	booked := byDate["2025-02-26"]
	assert.Len(t, booked.Lessons, 1)
	assert.Empty(t, booked.OpenSlots)

	free := byDate["2025-02-27"]
	assert.Equal(t, models.AllSlots, free.OpenSlots)
}

func TestLoadMonthRepoFailure(t *testing.T) {
	avail := &fakeAvailabilityRepo{listErr: errors.New("connection reset")}
	svc := &DefaultScheduleService{
		Availability: avail,
		Lessons:      &fakeLessonRepo{},
	}

	days, err := svc.LoadMonth(context.Background(), "inst-1", 2025, time.February)
	assert.Nil(t, days)
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestDaySlots(t *testing.T) {
	avail := &fakeAvailabilityRepo{
		windows: []models.AvailabilityWindow{
			{InstructorID: "inst-1", Date: "2025-02-25", Start: 540, End: 1020},
		},
	}
	lessons := &fakeLessonRepo{
		lessons: map[string][]models.LessonSession{
			"2025-02-25": {lesson(models.SlotMorning, models.LessonStatusScheduled)},
		},
	}
	svc := &DefaultScheduleService{Availability: avail, Lessons: lessons}

	slots, err := svc.DaySlots(context.Background(), "inst-1", "2025-02-25")
	require.NoError(t, err)
	assert.Equal(t, []models.SessionSlot{models.SlotAfternoon, models.SlotFullDay}, slots)
}

func TestDaySlotsRejectsBadDate(t *testing.T) {
	svc := &DefaultScheduleService{Availability: &fakeAvailabilityRepo{}, Lessons: &fakeLessonRepo{}}

	_, err := svc.DaySlots(context.Background(), "inst-1", "25-02-2025")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLoadFailed)
}

func TestListAvailability(t *testing.T) {
	avail := &fakeAvailabilityRepo{
		windows: []models.AvailabilityWindow{
			{InstructorID: "inst-1", Date: "2025-02-25", Start: 540, End: 720},
			{InstructorID: "inst-2", Date: "2025-02-25", Start: 540, End: 720},
		},
	}
	svc := &DefaultScheduleService{Availability: avail, Lessons: &fakeLessonRepo{}}

	windows, err := svc.ListAvailability(context.Background(), "inst-1")
	require.NoError(t, err)
	assert.Len(t, windows, 1)

	_, err = svc.ListAvailability(context.Background(), "")
	assert.Error(t, err)
}
