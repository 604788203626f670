package booking

import (
	"context"
	"fmt"

	instructorRepo "slopeline/database/repository/instructor"
	lessonRepo "slopeline/database/repository/lesson"
	"slopeline/models"
	"slopeline/services/notification"
	"slopeline/services/schedule"
)

// BookingService turns a student's slot selection into a scheduled lesson with
// a paid (or pending) invoice.
type BookingService interface {
	BookSlot(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
	CancelLesson(ctx context.Context, lessonID string) error
	ListStudentLessons(ctx context.Context, studentID string) ([]models.LessonSession, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Lessons     lessonRepo.LessonRepository
	Instructors instructorRepo.InstructorRepository
	Schedule    schedule.ScheduleService
	Payments    PaymentHandler
	Notify      notification.NotificationService
}

func NewDefaultBookingService(
	lessons lessonRepo.LessonRepository,
	instructors instructorRepo.InstructorRepository,
	scheduleSvc schedule.ScheduleService,
	payments PaymentHandler,
	notify notification.NotificationService,
) (*DefaultBookingService, error) {
	if lessons == nil || instructors == nil || scheduleSvc == nil || payments == nil {
		return nil, fmt.Errorf("booking service initialization error: one or more dependencies are nil")
	}
	return &DefaultBookingService{
		Lessons:     lessons,
		Instructors: instructors,
		Schedule:    scheduleSvc,
		Payments:    payments,
		Notify:      notify,
	}, nil
}
