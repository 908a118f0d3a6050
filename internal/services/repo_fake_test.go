package services

import (
	"context"
	"sort"
	"sync"

	"carhub/internal/models"
	"carhub/internal/repositories/interfaces"
	"carhub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCarRepo is an in-memory store adapter for service tests. GetByIDs
// deliberately returns records in insertion order, not request order, to
// exercise the comparison engine's re-sorting.
type fakeCarRepo struct {
	mu          sync.Mutex
	cars        []*models.Car
	countErr    error
	insertErr   error
	insertCalls int
	lastFilter  bson.M
	lastParams  *utils.PageParams
}

func newFakeCarRepo(cars ...*models.Car) *fakeCarRepo {
	return &fakeCarRepo{cars: cars}
}

func (f *fakeCarRepo) Find(ctx context.Context, filter bson.M, params *utils.PageParams) ([]*models.Car, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	f.lastParams = params

	total := int64(len(f.cars))
	start := params.GetSkip()
	if start > len(f.cars) {
		return nil, total, nil
	}
	end := start + params.Limit
	if end > len(f.cars) {
		end = len(f.cars)
	}
	return append([]*models.Car(nil), f.cars[start:end]...), total, nil
}

func (f *fakeCarRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.cars)), nil
}

func (f *fakeCarRepo) Distinct(ctx context.Context, field string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[string]bool)
	var values []string
	for _, car := range f.cars {
		if !seen[car.Brand] {
			seen[car.Brand] = true
			values = append(values, car.Brand)
		}
	}
	sort.Strings(values)
	return values, nil
}

func (f *fakeCarRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, car := range f.cars {
		if car.ID == id {
			return car, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeCarRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var found []*models.Car
	for _, car := range f.cars {
		if want[car.ID] {
			found = append(found, car)
		}
	}
	return found, nil
}

func (f *fakeCarRepo) GetFeatured(ctx context.Context, limit int) ([]*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var featured []*models.Car
	for _, car := range f.cars {
		if car.IsFeatured {
			featured = append(featured, car)
			if len(featured) == limit {
				break
			}
		}
	}
	return featured, nil
}

func (f *fakeCarRepo) BulkInsert(ctx context.Context, cars []*models.Car) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, car := range cars {
		if car.ID.IsZero() {
			car.ID = primitive.NewObjectID()
		}
		f.cars = append(f.cars, car)
	}
	return nil
}

func (f *fakeCarRepo) inserts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertCalls
}

func (f *fakeCarRepo) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cars)
}
