package validators

import (
	"errors"
	"fmt"

	"carhub/internal/models"
	"carhub/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("object_id", validateObjectID)
}

var (
	ErrMissingIDs   = errors.New("ids is required and must be an array")
	ErrCompareCount = fmt.Errorf("between %d and %d ids are required", utils.MinCompareCars, utils.MaxCompareCars)
	ErrMalformedID  = errors.New("every id must be a valid car id")
)

// ValidateCompareRequest checks the compare payload shape before anything is
// fetched: ids present, count within bounds, every id a 24-hex identifier.
func ValidateCompareRequest(req *models.CompareRequest) error {
	if req == nil || req.IDs == nil {
		return ErrMissingIDs
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			return ErrMissingIDs
		case "min", "max":
			return ErrCompareCount
		case "object_id":
			return ErrMalformedID
		}
	}
	return err
}

// ValidateCar covers the write-path invariants enforced at the boundary:
// uppercase brand, lowercase tags, bounded numeric fields. The read-only
// catalog core never needs it; the seed path does.
func ValidateCar(car *models.Car) error {
	return validate.Struct(car)
}

func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}
