// File: database/repository/lesson/queries.go
package lessonRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slopeline/models"
)

func (r *mongoLessonRepo) ListByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.LessonSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"instructorId": instructorID, "date": date}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []models.LessonSession
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("error decoding lessons: %w", err)
	}
	return lessons, nil
}

func (r *mongoLessonRepo) ListByStudent(ctx context.Context, studentID string) ([]models.LessonSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"studentIds": studentID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []models.LessonSession
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("error decoding lessons: %w", err)
	}
	return lessons, nil
}
