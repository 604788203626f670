// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"slopeline/database"
	"slopeline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MaxInValues caps how many values a single multi-value date filter may carry.
// Larger date sets are chunked into filters of at most this many values.
const MaxInValues = 10

type AvailabilityRepository interface {
	ListByInstructor(ctx context.Context, instructorID string) ([]models.AvailabilityWindow, error)
	ListByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.AvailabilityWindow, error)
	ListDates(ctx context.Context, instructorID string) ([]string, error)
	// BatchReplace deletes every window the instructor holds on removeDates and
	// on the dates of the inserted windows, then stages the inserts, committing
	// the whole batch as one ordered write. Either the whole batch applies or
	// none of it does from the caller's perspective.
	BatchReplace(ctx context.Context, instructorID string, removeDates []string, inserts []models.AvailabilityWindow) error
	// Insert adds a single window without touching the date's other windows.
	// Overlap checks are the caller's responsibility.
	Insert(ctx context.Context, window models.AvailabilityWindow) (string, error)
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("slopeline")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}
