// File: database/repository/instructor/crud.go
package instructorRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slopeline/models"
)

func (r *mongoInstructorRepo) Create(ctx context.Context, instructor models.Instructor) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if instructor.ID == "" {
		instructor.ID = uuid.New().String()
	}
	now := time.Now()
	instructor.CreatedAt = now
	instructor.UpdatedAt = now
	if instructor.Status == "" {
		instructor.Status = "pending"
	}

	if _, err := r.coll.InsertOne(ctx, instructor); err != nil {
		return "", fmt.Errorf("failed to create instructor: %w", err)
	}
	return instructor.ID, nil
}

func (r *mongoInstructorRepo) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var instructor models.Instructor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&instructor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("instructor not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &instructor, nil
}

func (r *mongoInstructorRepo) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var instructor models.Instructor
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&instructor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("instructor not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &instructor, nil
}

func (r *mongoInstructorRepo) Update(ctx context.Context, instructor *models.Instructor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	instructor.UpdatedAt = time.Now()
	filter := bson.M{"id": instructor.ID}
	res, err := r.coll.ReplaceOne(ctx, filter, instructor)
	if err != nil {
		return fmt.Errorf("failed to update instructor: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoInstructorRepo) SetStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set instructor status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the instructors collection.
func (r *mongoInstructorRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create instructor indexes: %w", err)
	}
	return nil
}
