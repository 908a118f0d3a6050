package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"carhub/internal/models"
	"carhub/internal/repositories/interfaces"
	"carhub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const carCacheTTL = 15 * time.Minute

type carRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewCarRepository(db *mongo.Database, cache CacheService) interfaces.CarRepository {
	return &carRepository{
		collection: db.Collection(utils.CarsCollection),
		cache:      cache,
	}
}

func (r *carRepository) Find(ctx context.Context, filter bson.M, params *utils.PageParams) ([]*models.Car, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, wrapStoreErr("count cars", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetFindOptions())
	if err != nil {
		return nil, 0, wrapStoreErr("find cars", err)
	}
	defer cursor.Close(ctx)

	var cars []*models.Car
	for cursor.Next(ctx) {
		var car models.Car
		if err := cursor.Decode(&car); err != nil {
			return nil, 0, fmt.Errorf("failed to decode car: %w", err)
		}
		cars = append(cars, &car)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, wrapStoreErr("iterate cars", err)
	}

	return cars, total, nil
}

func (r *carRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, wrapStoreErr("count cars", err)
	}
	return total, nil
}

func (r *carRepository) Distinct(ctx context.Context, field string) ([]string, error) {
	raw, err := r.collection.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, wrapStoreErr("distinct "+field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}

func (r *carRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	if car := r.getCarFromCache(ctx, id.Hex()); car != nil {
		return car, nil
	}

	var car models.Car
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, wrapStoreErr("get car", err)
	}

	r.cacheCar(ctx, &car)
	return &car, nil
}

// GetByIDs performs one $in batch fetch. Return order is whatever the store
// yields; callers needing a specific order re-sort themselves.
func (r *carRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Car, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, wrapStoreErr("find cars by ids", err)
	}
	defer cursor.Close(ctx)

	var cars []*models.Car
	for cursor.Next(ctx) {
		var car models.Car
		if err := cursor.Decode(&car); err != nil {
			return nil, fmt.Errorf("failed to decode car: %w", err)
		}
		cars = append(cars, &car)
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapStoreErr("iterate cars", err)
	}

	return cars, nil
}

func (r *carRepository) GetFeatured(ctx context.Context, limit int) ([]*models.Car, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"is_featured": true}, opts)
	if err != nil {
		return nil, wrapStoreErr("find featured cars", err)
	}
	defer cursor.Close(ctx)

	var cars []*models.Car
	for cursor.Next(ctx) {
		var car models.Car
		if err := cursor.Decode(&car); err != nil {
			return nil, fmt.Errorf("failed to decode car: %w", err)
		}
		cars = append(cars, &car)
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapStoreErr("iterate cars", err)
	}

	return cars, nil
}

func (r *carRepository) BulkInsert(ctx context.Context, cars []*models.Car) error {
	if len(cars) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(cars))
	for _, car := range cars {
		if car.ID.IsZero() {
			car.ID = primitive.NewObjectID()
		}
		car.CreatedAt = now
		car.UpdatedAt = now
		docs = append(docs, car)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return wrapStoreErr("bulk insert cars", err)
	}
	return nil
}

// wrapStoreErr tags connectivity failures so handlers can answer 503 instead
// of 500. Anything else keeps its wrapped detail.
func wrapStoreErr(op string, err error) error {
	if mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to %s: %w: %v", op, interfaces.ErrUnavailable, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// Cache operations. The catalog is read-only at runtime, so cached records
// only ever go stale across deploys; a short TTL covers that.
func (r *carRepository) cacheCar(ctx context.Context, car *models.Car) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, carCacheKey(car.ID.Hex()), car, carCacheTTL)
}

func (r *carRepository) getCarFromCache(ctx context.Context, id string) *models.Car {
	if r.cache == nil {
		return nil
	}

	var car models.Car
	if err := r.cache.Get(ctx, carCacheKey(id), &car); err != nil {
		return nil
	}
	return &car
}

func carCacheKey(id string) string {
	return fmt.Sprintf("car:%s", id)
}
