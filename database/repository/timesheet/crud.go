// File: database/repository/timesheet/crud.go
package timesheetRepo

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

func (r *mongoTimesheetRepo) Create(ctx context.Context, ws models.WorkSession) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ws.ID == "" {
		ws.ID = uuid.New().String()
	}
	now := time.Now()
	ws.CreatedAt = now
	ws.UpdatedAt = now
	ws.Status = models.WorkSessionActive

	if _, err := r.coll.InsertOne(ctx, ws); err != nil {
		return "", fmt.Errorf("failed to create work session: %w", err)
	}
	return ws.ID, nil
}

func (r *mongoTimesheetRepo) GetByID(ctx context.Context, id string) (*models.WorkSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ws models.WorkSession
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ws)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("work session not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &ws, nil
}

func (r *mongoTimesheetRepo) GetActive(ctx context.Context, instructorID string) (*models.WorkSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"instructorId": instructorID, "status": models.WorkSessionActive}
	var ws models.WorkSession
	err := r.coll.FindOne(ctx, filter).Decode(&ws)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &ws, nil
}

func (r *mongoTimesheetRepo) Complete(ctx context.Context, id string, clockOut int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.WorkSessionActive}
	update := bson.M{"$set": bson.M{
		"clockOut":  clockOut,
		"status":    models.WorkSessionCompleted,
		"updatedAt": time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to complete work session: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no active work session to complete")
	}
	return nil
}

func (r *mongoTimesheetRepo) ListByInstructor(ctx context.Context, instructorID string) ([]models.WorkSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"instructorId": instructorID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.WorkSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding work sessions: %w", err)
	}
	return sessions, nil
}

// EnsureIndexes creates the necessary indexes on the worksessions collection.
func (r *mongoTimesheetRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "instructorId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("instructor_status_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create work session indexes: %w", err)
	}
	return nil
}
