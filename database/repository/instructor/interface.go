// File: database/repository/instructor/interface.go
package instructorRepo

import (
	"context"

	"slopeline/database"
	"slopeline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type InstructorRepository interface {
	Create(ctx context.Context, instructor models.Instructor) (string, error)
	GetByID(ctx context.Context, id string) (*models.Instructor, error)
	GetByEmail(ctx context.Context, email string) (*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	SetStatus(ctx context.Context, id, status string) error
	EnsureIndexes() error
}

type mongoInstructorRepo struct {
	coll *mongo.Collection
}

// NewMongoInstructorRepo constructs a new MongoDB InstructorRepository.
func NewMongoInstructorRepo() InstructorRepository {
	db := database.MongoClient.Database("slopeline")
	return &mongoInstructorRepo{
		coll: db.Collection("instructors"),
	}
}
