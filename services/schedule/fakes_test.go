// File: services/schedule/fakes_test.go
package schedule

import (
	"context"
	"sort"
	"sync"

	"slopeline/models"
)

// fakeAvailabilityRepo is an in-memory AvailabilityRepository recording every
// batch it receives.
type fakeAvailabilityRepo struct {
	mu      sync.Mutex
	windows []models.AvailabilityWindow

	batchCalls []batchCall
	listErr    error
	batchErr   error
	insertErr  error
}

type batchCall struct {
	instructorID string
	removeDates  []string
	inserts      []models.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) ListByInstructor(ctx context.Context, instructorID string) ([]models.AvailabilityWindow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.InstructorID == instructorID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.AvailabilityWindow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.InstructorID == instructorID && w.Date == date {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListDates(ctx context.Context, instructorID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	seen := make(map[string]struct{})
	for _, w := range f.windows {
		if w.InstructorID == instructorID {
			seen[w.Date] = struct{}{}
		}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}

func (f *fakeAvailabilityRepo) BatchReplace(ctx context.Context, instructorID string, removeDates []string, inserts []models.AvailabilityWindow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls = append(f.batchCalls, batchCall{
		instructorID: instructorID,
		removeDates:  append([]string(nil), removeDates...),
		inserts:      append([]models.AvailabilityWindow(nil), inserts...),
	})
	if f.batchErr != nil {
		return f.batchErr
	}

	drop := make(map[string]struct{}, len(removeDates)+len(inserts))
	for _, d := range removeDates {
		drop[d] = struct{}{}
	}
	for _, w := range inserts {
		drop[w.Date] = struct{}{}
	}
	kept := f.windows[:0]
	for _, w := range f.windows {
		if _, gone := drop[w.Date]; gone && w.InstructorID == instructorID {
			continue
		}
		kept = append(kept, w)
	}
	f.windows = append(kept, inserts...)
	return nil
}

func (f *fakeAvailabilityRepo) Insert(ctx context.Context, window models.AvailabilityWindow) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return "", f.insertErr
	}
	window.ID = "win-" + window.Date
	f.windows = append(f.windows, window)
	return window.ID, nil
}

func (f *fakeAvailabilityRepo) EnsureIndexes() error { return nil }

// fakeLessonRepo serves lessons keyed by date.
type fakeLessonRepo struct {
	mu      sync.Mutex
	lessons map[string][]models.LessonSession
	listErr error
}

func (f *fakeLessonRepo) Create(ctx context.Context, lesson models.LessonSession) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lessons == nil {
		f.lessons = make(map[string][]models.LessonSession)
	}
	f.lessons[lesson.Date] = append(f.lessons[lesson.Date], lesson)
	return lesson.ID, nil
}

func (f *fakeLessonRepo) GetByID(ctx context.Context, lessonID string) (*models.LessonSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, day := range f.lessons {
		for _, l := range day {
			if l.ID == lessonID {
				return &l, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeLessonRepo) ListByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.LessonSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.lessons[date], nil
}

func (f *fakeLessonRepo) ListByStudent(ctx context.Context, studentID string) ([]models.LessonSession, error) {
	return nil, nil
}

func (f *fakeLessonRepo) UpdateStatus(ctx context.Context, lessonID, status string) error {
	return nil
}

func (f *fakeLessonRepo) EnsureIndexes() error { return nil }
