package notification

import (
	"context"
	"fmt"

	instructorRepo "slopeline/database/repository/instructor"
	"slopeline/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendInstructorPush(ctx context.Context, instructorID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Instructors instructorRepo.InstructorRepository
}

func NewDefaultNotificationService(instructors instructorRepo.InstructorRepository) (*DefaultNotificationService, error) {
	if instructors == nil {
		return nil, fmt.Errorf("notification service initialization error: instructor repository is nil")
	}
	return &DefaultNotificationService{Instructors: instructors}, nil
}

// SendInstructorPush looks up an instructor's FCM token and sends a push.
func (s *DefaultNotificationService) SendInstructorPush(
	ctx context.Context,
	instructorID, title, body string,
	data map[string]string,
) error {
	instructor, err := s.Instructors.GetByID(ctx, instructorID)
	if err != nil {
		return fmt.Errorf("SendInstructorPush: could not find instructor %s: %w", instructorID, err)
	}
	token := instructor.FCMToken
	if token == "" {
		return fmt.Errorf("SendInstructorPush: instructor %s has no FCM token", instructorID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "instructor"
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendInstructorPush: failed to send FCM message: %w", err)
	}

	utils.GetLogger().Debug("push notification sent",
		zap.String("instructorId", instructorID), zap.String("messageId", response))
	return nil
}
