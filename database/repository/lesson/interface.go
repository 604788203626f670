// File: database/repository/lesson/interface.go
package lessonRepo

import (
	"context"

	"slopeline/database"
	"slopeline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type LessonRepository interface {
	Create(ctx context.Context, lesson models.LessonSession) (string, error)
	GetByID(ctx context.Context, lessonID string) (*models.LessonSession, error)
	ListByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.LessonSession, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.LessonSession, error)
	UpdateStatus(ctx context.Context, lessonID, status string) error
	EnsureIndexes() error
}

type mongoLessonRepo struct {
	coll *mongo.Collection
}

// NewMongoLessonRepo constructs a new MongoDB LessonRepository.
func NewMongoLessonRepo() LessonRepository {
	db := database.MongoClient.Database("slopeline")
	return &mongoLessonRepo{
		coll: db.Collection("lessons"),
	}
}
