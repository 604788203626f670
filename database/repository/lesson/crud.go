// File: database/repository/lesson/crud.go
package lessonRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slopeline/models"
)

func (r *mongoLessonRepo) Create(ctx context.Context, lesson models.LessonSession) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if lesson.ID == "" {
		lesson.ID = uuid.New().String()
	}
	now := time.Now()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, lesson); err != nil {
		return "", fmt.Errorf("failed to create lesson: %w", err)
	}
	return lesson.ID, nil
}

func (r *mongoLessonRepo) GetByID(ctx context.Context, lessonID string) (*models.LessonSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var lesson models.LessonSession
	err := r.coll.FindOne(ctx, bson.M{"id": lessonID}).Decode(&lesson)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("lesson not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &lesson, nil
}

func (r *mongoLessonRepo) UpdateStatus(ctx context.Context, lessonID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": lessonID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lesson status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
