// File: database/repository/timesheet/interface.go
package timesheetRepo

import (
	"context"

	"slopeline/database"
	"slopeline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TimesheetRepository interface {
	Create(ctx context.Context, ws models.WorkSession) (string, error)
	GetByID(ctx context.Context, id string) (*models.WorkSession, error)
	GetActive(ctx context.Context, instructorID string) (*models.WorkSession, error)
	Complete(ctx context.Context, id string, clockOut int) error
	ListByInstructor(ctx context.Context, instructorID string) ([]models.WorkSession, error)
	EnsureIndexes() error
}

type mongoTimesheetRepo struct {
	coll *mongo.Collection
}

// NewMongoTimesheetRepo constructs a new MongoDB TimesheetRepository.
func NewMongoTimesheetRepo() TimesheetRepository {
	db := database.MongoClient.Database("slopeline")
	return &mongoTimesheetRepo{
		coll: db.Collection("worksessions"),
	}
}
