package booking

import (
	"context"
	"fmt"

	"slopeline/models"
	"slopeline/services/schedule"
	"slopeline/utils"

	"go.uber.org/zap"
)

// BookSlot books one session slot for a student. The slot must still be open
// per the availability resolver at booking time; pricing comes from the
// instructor's hourly rate and the slot's canonical duration.
func (s *DefaultBookingService) BookSlot(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	if req.UserID == "" {
		return nil, fmt.Errorf("missing user id")
	}
	if !req.Slot.Valid() {
		return nil, fmt.Errorf("unknown session slot %q", req.Slot)
	}

	instructor, err := s.Instructors.GetByID(ctx, req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("instructor not found: %w", err)
	}

	open, err := s.Schedule.DaySlots(ctx, req.InstructorID, req.Date)
	if err != nil {
		return nil, err
	}
	available := false
	for _, slot := range open {
		if slot == req.Slot {
			available = true
			break
		}
	}
	if !available {
		return nil, fmt.Errorf("slot %s on %s is no longer available", req.Slot, req.Date)
	}

	start, end := schedule.SlotRange(req.Slot)
	hours := float64(end-start) / 60.0
	price := instructor.HourlyRate * hours
	currency := instructor.Currency
	if currency == "" {
		currency = "usd"
	}

	lesson := models.LessonSession{
		InstructorID: req.InstructorID,
		Date:         req.Date,
		SessionType:  req.Slot,
		Status:       models.LessonStatusScheduled,
		StudentIDs:   []string{req.UserID},
		Discipline:   req.Discipline,
		SkillLevel:   req.SkillLevel,
		Price:        price,
		Currency:     currency,
	}
	lessonID, err := s.Lessons.Create(ctx, lesson)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}
	lesson.ID = lessonID

	method := req.Method
	if method == "" {
		method = "card"
	}
	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:   req.UserID,
		LessonID: lessonID,
		Amount:   price,
		Currency: currency,
		Method:   method,
	})
	if err != nil {
		// Roll the lesson back so the slot frees up again.
		if cancelErr := s.Lessons.UpdateStatus(ctx, lessonID, models.LessonStatusCancelled); cancelErr != nil {
			logger.Error("failed to cancel lesson after payment failure",
				zap.String("lessonId", lessonID), zap.Error(cancelErr))
		}
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	if s.Notify != nil {
		go func() {
			notifyCtx := context.Background()
			if err := s.Notify.SendInstructorPush(notifyCtx, req.InstructorID,
				"New lesson booked",
				fmt.Sprintf("%s lesson on %s", req.Slot, req.Date),
				map[string]string{"lessonId": lessonID, "date": req.Date},
			); err != nil {
				logger.Warn("booking notification failed", zap.Error(err))
			}
		}()
	}

	return &models.BookingResponse{Lesson: lesson, Invoice: invoice}, nil
}

// ListStudentLessons returns the student's lessons, newest first.
func (s *DefaultBookingService) ListStudentLessons(ctx context.Context, studentID string) ([]models.LessonSession, error) {
	if studentID == "" {
		return nil, fmt.Errorf("missing student id")
	}
	return s.Lessons.ListByStudent(ctx, studentID)
}

// CancelLesson marks the lesson cancelled, which frees its slot on the next
// calendar load.
func (s *DefaultBookingService) CancelLesson(ctx context.Context, lessonID string) error {
	if lessonID == "" {
		return fmt.Errorf("missing lesson id")
	}
	if err := s.Lessons.UpdateStatus(ctx, lessonID, models.LessonStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel lesson: %w", err)
	}
	return nil
}
