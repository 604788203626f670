package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"slopeline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLessonRepo struct {
	mu       sync.Mutex
	lessons  map[string]*models.LessonSession
	nextID   int
	statuses map[string]string
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{
		lessons:  make(map[string]*models.LessonSession),
		statuses: make(map[string]string),
	}
}

func (f *fakeLessonRepo) Create(ctx context.Context, lesson models.LessonSession) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("lesson-%d", f.nextID)
	lesson.ID = id
	f.lessons[id] = &lesson
	return id, nil
}

func (f *fakeLessonRepo) GetByID(ctx context.Context, lessonID string) (*models.LessonSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.lessons[lessonID]; ok {
		return l, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeLessonRepo) ListByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.LessonSession, error) {
	return nil, nil
}

func (f *fakeLessonRepo) ListByStudent(ctx context.Context, studentID string) ([]models.LessonSession, error) {
	return nil, nil
}

func (f *fakeLessonRepo) UpdateStatus(ctx context.Context, lessonID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[lessonID] = status
	if l, ok := f.lessons[lessonID]; ok {
		l.Status = status
	}
	return nil
}

func (f *fakeLessonRepo) EnsureIndexes() error { return nil }

type fakeInstructorRepo struct {
	instructor *models.Instructor
}

func (f *fakeInstructorRepo) Create(ctx context.Context, instructor models.Instructor) (string, error) {
	return "", nil
}

func (f *fakeInstructorRepo) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	if f.instructor == nil || f.instructor.ID != id {
		return nil, errors.New("not found")
	}
	return f.instructor, nil
}

func (f *fakeInstructorRepo) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	return nil, errors.New("not found")
}

func (f *fakeInstructorRepo) Update(ctx context.Context, instructor *models.Instructor) error {
	return nil
}

func (f *fakeInstructorRepo) SetStatus(ctx context.Context, id, status string) error { return nil }

func (f *fakeInstructorRepo) EnsureIndexes() error { return nil }

type fakeScheduleService struct {
	open []models.SessionSlot
	err  error
}

func (f *fakeScheduleService) DaySlots(ctx context.Context, instructorID, date string) ([]models.SessionSlot, error) {
	return f.open, f.err
}

func (f *fakeScheduleService) LoadMonth(ctx context.Context, instructorID string, year int, month time.Month) ([]models.CalendarDay, error) {
	return nil, nil
}

func (f *fakeScheduleService) ListAvailability(ctx context.Context, instructorID string) ([]models.AvailabilityWindow, error) {
	return nil, nil
}

func (f *fakeScheduleService) UpdateAvailability(ctx context.Context, req models.UpdateAvailabilityRequest) error {
	return nil
}

func (f *fakeScheduleService) ApplyWeeklyPattern(ctx context.Context, req models.WeeklyPatternRequest) error {
	return nil
}

func (f *fakeScheduleService) AddDerivedWindow(ctx context.Context, instructorID, date string, start, end int) error {
	return nil
}

type fakePaymentHandler struct {
	err      error
	received []models.PaymentRequest
}

func (f *fakePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	f.received = append(f.received, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Invoice{
		InvoiceID: "inv-1",
		UserID:    req.UserID,
		LessonID:  req.LessonID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
	}, nil
}

func newTestBookingService(t *testing.T, lessons *fakeLessonRepo, sched *fakeScheduleService, payments *fakePaymentHandler) *DefaultBookingService {
	t.Helper()
	instructors := &fakeInstructorRepo{
		instructor: &models.Instructor{
			ID:         "inst-1",
			Name:       "Alex",
			HourlyRate: 80,
			Currency:   "eur",
		},
	}
	svc, err := NewDefaultBookingService(lessons, instructors, sched, payments, nil)
	require.NoError(t, err)
	return svc
}

func TestBookSlot(t *testing.T) {
	lessons := newFakeLessonRepo()
	sched := &fakeScheduleService{open: []models.SessionSlot{models.SlotMorning, models.SlotFullDay}}
	payments := &fakePaymentHandler{}
	svc := newTestBookingService(t, lessons, sched, payments)

	resp, err := svc.BookSlot(context.Background(), models.BookingRequest{
		UserID:       "user-1",
		InstructorID: "inst-1",
		Date:         "2025-02-25",
		Slot:         models.SlotMorning,
		Discipline:   "ski",
	})
	require.NoError(t, err)

	// Morning is three hours at 80/h.
	assert.Equal(t, 240.0, resp.Lesson.Price)
	assert.Equal(t, "eur", resp.Lesson.Currency)
	assert.Equal(t, models.LessonStatusScheduled, resp.Lesson.Status)
	assert.Equal(t, []string{"user-1"}, resp.Lesson.StudentIDs)
	require.NotNil(t, resp.Invoice)
	assert.Equal(t, resp.Lesson.ID, resp.Invoice.LessonID)

	require.Len(t, payments.received, 1)
	assert.Equal(t, "card", payments.received[0].Method, "method defaults to card")
}

func TestBookSlotFullDayPricing(t *testing.T) {
	lessons := newFakeLessonRepo()
	sched := &fakeScheduleService{open: models.AllSlots}
	payments := &fakePaymentHandler{}
	svc := newTestBookingService(t, lessons, sched, payments)

	resp, err := svc.BookSlot(context.Background(), models.BookingRequest{
		UserID:       "user-1",
		InstructorID: "inst-1",
		Date:         "2025-02-25",
		Slot:         models.SlotFullDay,
		Method:       "cash",
	})
	require.NoError(t, err)

	// Full day is eight hours at 80/h.
	assert.Equal(t, 640.0, resp.Lesson.Price)
	require.Len(t, payments.received, 1)
	assert.Equal(t, "cash", payments.received[0].Method)
}

func TestBookSlotUnavailable(t *testing.T) {
	lessons := newFakeLessonRepo()
	sched := &fakeScheduleService{open: []models.SessionSlot{models.SlotAfternoon}}
	svc := newTestBookingService(t, lessons, sched, &fakePaymentHandler{})

	_, err := svc.BookSlot(context.Background(), models.BookingRequest{
		UserID:       "user-1",
		InstructorID: "inst-1",
		Date:         "2025-02-25",
		Slot:         models.SlotMorning,
	})
	assert.ErrorContains(t, err, "no longer available")
	assert.Empty(t, lessons.lessons, "no lesson may be created for a closed slot")
}

func TestBookSlotPaymentFailureRollsBack(t *testing.T) {
	lessons := newFakeLessonRepo()
	sched := &fakeScheduleService{open: models.AllSlots}
	payments := &fakePaymentHandler{err: errors.New("card declined")}
	svc := newTestBookingService(t, lessons, sched, payments)

	_, err := svc.BookSlot(context.Background(), models.BookingRequest{
		UserID:       "user-1",
		InstructorID: "inst-1",
		Date:         "2025-02-25",
		Slot:         models.SlotMorning,
	})
	require.ErrorContains(t, err, "payment failed")

	require.Len(t, lessons.statuses, 1)
	for _, status := range lessons.statuses {
		assert.Equal(t, models.LessonStatusCancelled, status)
	}
}

func TestBookSlotValidation(t *testing.T) {
	svc := newTestBookingService(t, newFakeLessonRepo(), &fakeScheduleService{open: models.AllSlots}, &fakePaymentHandler{})
	ctx := context.Background()

	_, err := svc.BookSlot(ctx, models.BookingRequest{
		InstructorID: "inst-1", Date: "2025-02-25", Slot: models.SlotMorning,
	})
	assert.ErrorContains(t, err, "missing user id")

	_, err = svc.BookSlot(ctx, models.BookingRequest{
		UserID: "user-1", InstructorID: "inst-1", Date: "2025-02-25", Slot: "evening",
	})
	assert.ErrorContains(t, err, "unknown session slot")

	_, err = svc.BookSlot(ctx, models.BookingRequest{
		UserID: "user-1", InstructorID: "missing", Date: "2025-02-25", Slot: models.SlotMorning,
	})
	assert.ErrorContains(t, err, "instructor not found")
}

func TestCancelLesson(t *testing.T) {
	lessons := newFakeLessonRepo()
	svc := newTestBookingService(t, lessons, &fakeScheduleService{}, &fakePaymentHandler{})
	ctx := context.Background()

	id, err := lessons.Create(ctx, models.LessonSession{Status: models.LessonStatusScheduled})
	require.NoError(t, err)

	require.NoError(t, svc.CancelLesson(ctx, id))
	assert.Equal(t, models.LessonStatusCancelled, lessons.statuses[id])

	assert.Error(t, svc.CancelLesson(ctx, ""))
}
