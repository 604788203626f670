// FILE: database/repository/lesson/indexes.go
package lessonRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the lessons collection.
func (r *mongoLessonRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "instructorId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("instructor_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "studentIds", Value: 1}},
			Options: options.Index().SetName("student_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create lesson indexes: %w", err)
	}
	return nil
}
