// File: database/repository/availability/crud.go
package availabilityRepo

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

// chunkDates splits dates into groups no larger than MaxInValues so every $in
// filter stays within the provider's multi-value limit.
func chunkDates(dates []string) [][]string {
	var chunks [][]string
	for len(dates) > 0 {
		n := MaxInValues
		if len(dates) < n {
			n = len(dates)
		}
		chunks = append(chunks, dates[:n])
		dates = dates[n:]
	}
	return chunks
}

func (r *mongoAvailabilityRepo) Insert(ctx context.Context, window models.AvailabilityWindow) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if window.ID == "" {
		window.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, window); err != nil {
		return "", fmt.Errorf("failed to insert availability window: %w", err)
	}
	return window.ID, nil
}

func (r *mongoAvailabilityRepo) BatchReplace(ctx context.Context, instructorID string, removeDates []string, inserts []models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Dates receiving new windows are cleared first in the same batch so a
	// date never ends up holding two conflicting windows.
	overwriteDates := make([]string, 0, len(inserts))
	seen := make(map[string]struct{}, len(inserts))
	for _, w := range inserts {
		if _, ok := seen[w.Date]; ok {
			continue
		}
		seen[w.Date] = struct{}{}
		overwriteDates = append(overwriteDates, w.Date)
	}

	var writes []mongo.WriteModel
	for _, chunk := range chunkDates(removeDates) {
		writes = append(writes, mongo.NewDeleteManyModel().SetFilter(bson.M{
			"instructorId": instructorID,
			"date":         bson.M{"$in": chunk},
		}))
	}
	for _, chunk := range chunkDates(overwriteDates) {
		writes = append(writes, mongo.NewDeleteManyModel().SetFilter(bson.M{
			"instructorId": instructorID,
			"date":         bson.M{"$in": chunk},
		}))
	}
	for _, w := range inserts {
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
		writes = append(writes, mongo.NewInsertOneModel().SetDocument(w))
	}
	if len(writes) == 0 {
		return nil
	}

	// Ordered execution keeps every delete ahead of the inserts it protects.
	opts := options.BulkWrite().SetOrdered(true)
	if _, err := r.coll.BulkWrite(ctx, writes, opts); err != nil {
		return fmt.Errorf("availability batch write failed: %w", err)
	}
	return nil
}
