package validators

import (
	"testing"

	"carhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func hexIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = primitive.NewObjectID().Hex()
	}
	return ids
}

func TestValidateCompareRequest_Valid(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		assert.NoError(t, ValidateCompareRequest(&models.CompareRequest{IDs: hexIDs(n)}))
	}
}

func TestValidateCompareRequest_MissingIDs(t *testing.T) {
	assert.ErrorIs(t, ValidateCompareRequest(nil), ErrMissingIDs)
	assert.ErrorIs(t, ValidateCompareRequest(&models.CompareRequest{}), ErrMissingIDs)
}

func TestValidateCompareRequest_Count(t *testing.T) {
	assert.ErrorIs(t, ValidateCompareRequest(&models.CompareRequest{IDs: hexIDs(1)}), ErrCompareCount)
	assert.ErrorIs(t, ValidateCompareRequest(&models.CompareRequest{IDs: hexIDs(5)}), ErrCompareCount)
}

func TestValidateCompareRequest_MalformedID(t *testing.T) {
	ids := hexIDs(2)
	ids[1] = "59-plate-kia"
	assert.ErrorIs(t, ValidateCompareRequest(&models.CompareRequest{IDs: ids}), ErrMalformedID)
}

func TestValidateCar(t *testing.T) {
	car := &models.Car{
		Brand:           "HONDA",
		Model:           "City",
		LaunchYear:      2023,
		SeatingCapacity: 5,
		Tags:            []string{"sedan", "petrol"},
	}
	require.NoError(t, ValidateCar(car))

	lowercaseBrand := *car
	lowercaseBrand.Brand = "honda"
	assert.Error(t, ValidateCar(&lowercaseBrand))

	uppercaseTag := *car
	uppercaseTag.Tags = []string{"Sedan"}
	assert.Error(t, ValidateCar(&uppercaseTag))

	badRating := *car
	rating := 7.5
	badRating.SafetyRating = &rating
	assert.Error(t, ValidateCar(&badRating))
}
