package services

import (
	"context"
	"fmt"

	"carhub/internal/models"
	"carhub/internal/repositories/interfaces"
	"carhub/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CompareService interface {
	Compare(ctx context.Context, req *models.CompareRequest) (*models.ComparisonResult, error)
}

type compareService struct {
	repo interfaces.CarRepository
}

func NewCompareService(repo interfaces.CarRepository) CompareService {
	return &compareService{repo: repo}
}

// Compare fetches the requested records in one batch and aligns them against
// the fixed specification schema. All-or-nothing: any unresolved id fails the
// whole request. Output order always follows the request's id order, not the
// store's return order.
func (s *compareService) Compare(ctx context.Context, req *models.CompareRequest) (*models.ComparisonResult, error) {
	if err := validators.ValidateCompareRequest(req); err != nil {
		return nil, &InvalidRequestError{Reason: err.Error()}
	}

	ids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, &InvalidRequestError{Reason: fmt.Sprintf("malformed car id %q", raw)}
		}
		ids = append(ids, oid)
	}

	fetched, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.Car, len(fetched))
	for _, car := range fetched {
		byID[car.ID] = car
	}

	cars := make([]*models.Car, 0, len(ids))
	var missing []string
	for i, id := range ids {
		car, ok := byID[id]
		if !ok {
			missing = append(missing, req.IDs[i])
			continue
		}
		cars = append(cars, car)
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Missing: missing}
	}

	return &models.ComparisonResult{
		Cars:       cars,
		Comparison: buildComparison(cars),
	}, nil
}

// buildComparison produces one row per schema field, in schema declaration
// order. A row differs when any record's rendered value (or its presence)
// deviates from the first record's.
func buildComparison(cars []*models.Car) []models.CompareRow {
	rows := make([]models.CompareRow, 0, len(compareSchema))
	for _, field := range compareSchema {
		row := models.CompareRow{
			Key:    field.key,
			Label:  field.label,
			Values: make([]models.CompareValue, 0, len(cars)),
		}

		var first *string
		for i, car := range cars {
			value := models.CompareValue{CarID: car.ID.Hex()}
			if rendered, ok := field.render(car); ok {
				value.Value = &rendered
			}
			row.Values = append(row.Values, value)

			if i == 0 {
				first = value.Value
				continue
			}
			if !sameValue(first, value.Value) {
				row.Differs = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// sameValue treats absent-vs-present as a difference; two absent values are
// equal.
func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
