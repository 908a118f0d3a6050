package services

import (
	"context"
	"strconv"

	"carhub/internal/filters"
	"carhub/internal/models"
	"carhub/internal/repositories/interfaces"
	"carhub/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultFeaturedLimit = 6

type CatalogService interface {
	List(ctx context.Context, query map[string]string) (*models.CarListResult, error)
	GetByID(ctx context.Context, id string) (*models.Car, error)
	Brands(ctx context.Context) ([]string, error)
	Featured(ctx context.Context, limitRaw string) ([]*models.Car, error)
}

type catalogService struct {
	repo        interfaces.CarRepository
	featuredIDs []string
}

// NewCatalogService wires the listing endpoints. featuredIDs is the configured
// fallback shown when no record carries the featured flag.
func NewCatalogService(repo interfaces.CarRepository, featuredIDs []string) CatalogService {
	return &catalogService{
		repo:        repo,
		featuredIDs: featuredIDs,
	}
}

// List compiles the query into a predicate, resolves paging, and runs one
// store query. Validation failures never reach the store.
func (s *catalogService) List(ctx context.Context, query map[string]string) (*models.CarListResult, error) {
	filter, err := filters.Compile(query)
	if err != nil {
		return nil, err
	}

	params := utils.ResolvePageParams(query["page"], query["limit"], query["sort"])

	cars, total, err := s.repo.Find(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	if cars == nil {
		cars = []*models.Car{}
	}

	return &models.CarListResult{
		Data:       cars,
		Page:       params.Page,
		TotalPages: utils.TotalPages(total, params.Limit),
		Total:      total,
		Limit:      params.Limit,
	}, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*models.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &InvalidRequestError{Reason: "invalid car id"}
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *catalogService) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.repo.Distinct(ctx, "brand")
	if err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []string{}
	}
	return brands, nil
}

// Featured returns flagged records, falling back to the configured id list
// when nothing is flagged. The limit is clamped into [1, MaxFeaturedLimit].
func (s *catalogService) Featured(ctx context.Context, limitRaw string) ([]*models.Car, error) {
	limit, err := strconv.Atoi(limitRaw)
	if err != nil {
		limit = defaultFeaturedLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > utils.MaxFeaturedLimit {
		limit = utils.MaxFeaturedLimit
	}

	cars, err := s.repo.GetFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(cars) > 0 {
		return cars, nil
	}

	return s.fallbackFeatured(ctx, limit)
}

// fallbackFeatured fetches the configured ids in one batch, preserving the
// configured order. Malformed or unresolved ids are skipped, not errors.
func (s *catalogService) fallbackFeatured(ctx context.Context, limit int) ([]*models.Car, error) {
	var ids []primitive.ObjectID
	for _, raw := range s.featuredIDs {
		if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
			ids = append(ids, oid)
		}
	}
	if len(ids) == 0 {
		return []*models.Car{}, nil
	}

	fetched, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.Car, len(fetched))
	for _, car := range fetched {
		byID[car.ID] = car
	}

	cars := make([]*models.Car, 0, limit)
	for _, id := range ids {
		if car, ok := byID[id]; ok {
			cars = append(cars, car)
			if len(cars) == limit {
				break
			}
		}
	}
	return cars, nil
}
