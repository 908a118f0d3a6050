package interfaces

import (
	"context"
	"errors"

	"carhub/internal/models"
	"carhub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable marks store failures that should surface as 503 rather than
// 500. The repository wraps timeouts and connection failures with it.
var ErrUnavailable = errors.New("store unavailable")

// ErrNotFound is returned by GetByID when no record carries the id.
var ErrNotFound = errors.New("car not found")

// CarRepository is the record store adapter. The catalog core only reads;
// writes exist for the seed path and the administrative tooling.
type CarRepository interface {
	// Query execution
	Find(ctx context.Context, filter bson.M, params *utils.PageParams) ([]*models.Car, int64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Distinct(ctx context.Context, field string) ([]string, error)

	// Identity lookups
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Car, error)

	// Featured listing
	GetFeatured(ctx context.Context, limit int) ([]*models.Car, error)

	// Seed path
	BulkInsert(ctx context.Context, cars []*models.Car) error
}
