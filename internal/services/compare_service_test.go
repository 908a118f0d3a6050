package services

import (
	"context"
	"testing"

	"carhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testCar(brand, model string) *models.Car {
	min, max := 1000000.0, 1200000.0
	return &models.Car{
		ID:           primitive.NewObjectID(),
		Title:        brand + " " + model,
		Brand:        brand,
		Model:        model,
		BodyType:     models.BodyTypeSUV,
		FuelType:     models.FuelTypePetrol,
		Transmission: models.TransmissionManual,
		DriveType:    models.DriveTypeFWD,
		Engine:       models.Engine{DisplacementCC: 1497, Cylinders: 4, Aspiration: models.AspirationNA},
		Performance:  models.Performance{PowerBHP: 118, TorqueNm: 145, TopSpeedKmph: 180, ZeroToHundredSec: 10.2},
		Efficiency:   models.Efficiency{MileageKmpl: 17.8},
		Price:        models.PriceRange{Min: &min, Max: &max, Currency: "INR"},
		LaunchYear:   2023,
	}
}

func TestCompare_PreservesRequestOrder(t *testing.T) {
	a := testCar("HONDA", "City")
	b := testCar("HYUNDAI", "Creta")
	c := testCar("TATA", "Nexon")
	// Stored a, b, c; requested c, a, b. The fake returns store order, so the
	// service must realign.
	repo := newFakeCarRepo(a, b, c)
	svc := NewCompareService(repo)

	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{c.ID.Hex(), a.ID.Hex(), b.ID.Hex()},
	})
	require.NoError(t, err)

	require.Len(t, result.Cars, 3)
	assert.Equal(t, c.ID, result.Cars[0].ID)
	assert.Equal(t, a.ID, result.Cars[1].ID)
	assert.Equal(t, b.ID, result.Cars[2].ID)

	for _, row := range result.Comparison {
		require.Len(t, row.Values, 3)
		assert.Equal(t, c.ID.Hex(), row.Values[0].CarID)
		assert.Equal(t, a.ID.Hex(), row.Values[1].CarID)
		assert.Equal(t, b.ID.Hex(), row.Values[2].CarID)
	}
}

func TestCompare_MissingIDsFailWholeRequest(t *testing.T) {
	a := testCar("HONDA", "City")
	repo := newFakeCarRepo(a)
	svc := NewCompareService(repo)

	ghost := primitive.NewObjectID().Hex()
	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{a.ID.Hex(), ghost},
	})

	assert.Nil(t, result)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{ghost}, notFound.Missing)
}

func TestCompare_MalformedID(t *testing.T) {
	a := testCar("HONDA", "City")
	svc := NewCompareService(newFakeCarRepo(a))

	_, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{a.ID.Hex(), "not-a-hex-id"},
	})

	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

func TestCompare_CardinalityBounds(t *testing.T) {
	a := testCar("HONDA", "City")
	svc := NewCompareService(newFakeCarRepo(a))

	_, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{a.ID.Hex()},
	})
	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)

	ids := make([]string, 5)
	for i := range ids {
		ids[i] = primitive.NewObjectID().Hex()
	}
	_, err = svc.Compare(context.Background(), &models.CompareRequest{IDs: ids})
	require.ErrorAs(t, err, &invalid)
}

func TestCompare_SchemaOrderIsFixed(t *testing.T) {
	a := testCar("HONDA", "City")
	b := testCar("HONDA", "City")
	svc := NewCompareService(newFakeCarRepo(a, b))

	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{a.ID.Hex(), b.ID.Hex()},
	})
	require.NoError(t, err)

	require.Len(t, result.Comparison, len(compareSchema))
	assert.Equal(t, "brand", result.Comparison[0].Key)
	assert.Equal(t, "model", result.Comparison[1].Key)
	assert.Equal(t, "seatingCapacity", result.Comparison[len(result.Comparison)-1].Key)
}

func rowByKey(t *testing.T, rows []models.CompareRow, key string) models.CompareRow {
	t.Helper()
	for _, row := range rows {
		if row.Key == key {
			return row
		}
	}
	t.Fatalf("no comparison row with key %q", key)
	return models.CompareRow{}
}

func TestCompare_AbsentVersusPresentDiffers(t *testing.T) {
	rated := testCar("TATA", "Nexon")
	rating := 5.0
	rated.SafetyRating = &rating
	unrated := testCar("TATA", "Nexon")

	svc := NewCompareService(newFakeCarRepo(rated, unrated))
	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{rated.ID.Hex(), unrated.ID.Hex()},
	})
	require.NoError(t, err)

	row := rowByKey(t, result.Comparison, "safetyRating")
	assert.True(t, row.Differs)
	require.NotNil(t, row.Values[0].Value)
	assert.Equal(t, "5", *row.Values[0].Value)
	assert.Nil(t, row.Values[1].Value)
}

func TestCompare_IdenticalValuesDoNotDiffer(t *testing.T) {
	a := testCar("HONDA", "City")
	b := testCar("HONDA", "City")
	svc := NewCompareService(newFakeCarRepo(a, b))

	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{a.ID.Hex(), b.ID.Hex()},
	})
	require.NoError(t, err)

	for _, row := range result.Comparison {
		assert.False(t, row.Differs, "row %s should not differ", row.Key)
	}
}

func TestCompare_ZeroIsAValue(t *testing.T) {
	a := testCar("MARUTI", "Wagon R")
	a.Efficiency.RangeKm = 0
	b := testCar("MARUTI", "Wagon R")
	b.Efficiency.RangeKm = 0

	svc := NewCompareService(newFakeCarRepo(a, b))
	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{a.ID.Hex(), b.ID.Hex()},
	})
	require.NoError(t, err)

	row := rowByKey(t, result.Comparison, "efficiency.range")
	assert.False(t, row.Differs)
	require.NotNil(t, row.Values[0].Value)
	assert.Equal(t, "0", *row.Values[0].Value)
}

func TestCompare_PriceRendering(t *testing.T) {
	ranged := testCar("KIA", "Seltos")
	min, max := 1100000.0, 1900000.0
	ranged.Price = models.PriceRange{Min: &min, Max: &max, Currency: "INR"}

	flat := testCar("KIA", "Seltos")
	price := 1500000.0
	flat.Price = models.PriceRange{Min: &price, Max: &price, Currency: "INR"}

	svc := NewCompareService(newFakeCarRepo(ranged, flat))
	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{ranged.ID.Hex(), flat.ID.Hex()},
	})
	require.NoError(t, err)

	row := rowByKey(t, result.Comparison, "price")
	assert.True(t, row.Differs)
	require.NotNil(t, row.Values[0].Value)
	assert.Equal(t, "1100000 - 1900000", *row.Values[0].Value)
	require.NotNil(t, row.Values[1].Value)
	assert.Equal(t, "1500000", *row.Values[1].Value)
}

func TestCompare_BooleanRendering(t *testing.T) {
	turbo := testCar("BMW", "M340i")
	turbo.Engine.Turbo = true
	na := testCar("BMW", "M340i")

	svc := NewCompareService(newFakeCarRepo(turbo, na))
	result, err := svc.Compare(context.Background(), &models.CompareRequest{
		IDs: []string{turbo.ID.Hex(), na.ID.Hex()},
	})
	require.NoError(t, err)

	row := rowByKey(t, result.Comparison, "engine.turbo")
	assert.True(t, row.Differs)
	assert.Equal(t, "Yes", *row.Values[0].Value)
	assert.Equal(t, "No", *row.Values[1].Value)
}
