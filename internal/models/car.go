package models

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BodyType string

const (
	BodyTypeSUV         BodyType = "SUV"
	BodyTypeSedan       BodyType = "Sedan"
	BodyTypeHatchback   BodyType = "Hatchback"
	BodyTypeCoupe       BodyType = "Coupe"
	BodyTypeEV          BodyType = "EV"
	BodyTypeSports      BodyType = "Sports"
	BodyTypeSupercar    BodyType = "Supercar"
	BodyTypeConvertible BodyType = "Convertible"
	BodyTypeWagon       BodyType = "Wagon"
	BodyTypePickup      BodyType = "Pickup"
	BodyTypeMPV         BodyType = "MPV"
)

type FuelType string

const (
	FuelTypePetrol FuelType = "Petrol"
	FuelTypeDiesel FuelType = "Diesel"
	FuelTypeEV     FuelType = "EV"
	FuelTypeHybrid FuelType = "Hybrid"
	FuelTypeCNG    FuelType = "CNG"
	FuelTypeLPG    FuelType = "LPG"
)

type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionDCT       Transmission = "DCT"
	TransmissionCVT       Transmission = "CVT"
	TransmissionAMT       Transmission = "AMT"
)

type DriveType string

const (
	DriveTypeFWD     DriveType = "FWD"
	DriveTypeRWD     DriveType = "RWD"
	DriveTypeAWD     DriveType = "AWD"
	DriveTypeFourWD  DriveType = "4WD"
	DriveTypeDefault           = DriveTypeFWD
)

type Aspiration string

const (
	AspirationNA           Aspiration = "NA"
	AspirationTurbo        Aspiration = "Turbo"
	AspirationSupercharged Aspiration = "Supercharged"
)

type Engine struct {
	DisplacementCC int        `json:"displacement" bson:"displacement" validate:"min=0"`
	Cylinders      int        `json:"cylinders" bson:"cylinders" validate:"min=0,max=16"`
	Turbo          bool       `json:"turbo" bson:"turbo"`
	Aspiration     Aspiration `json:"aspiration,omitempty" bson:"aspiration,omitempty"`
}

type Performance struct {
	PowerBHP         float64 `json:"powerBHP" bson:"power_bhp" validate:"min=0"`
	TorqueNm         float64 `json:"torqueNm" bson:"torque_nm" validate:"min=0"`
	TopSpeedKmph     float64 `json:"topSpeed" bson:"top_speed" validate:"min=0"`
	ZeroToHundredSec float64 `json:"zeroToHundred" bson:"zero_to_hundred" validate:"min=0"`
}

type Efficiency struct {
	MileageKmpl float64 `json:"mileage" bson:"mileage" validate:"min=0"`
	RangeKm     float64 `json:"range" bson:"range" validate:"min=0"`
}

// PriceRange is a closed interval in a currency unit. Bounds are pointers so
// an absent bound is distinguishable from a zero price.
type PriceRange struct {
	Min      *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" bson:"max,omitempty"`
	Currency string   `json:"currency,omitempty" bson:"currency,omitempty"`
}

// Format derives the display price: a single value when the bounds collapse,
// a hyphenated range when both are present and differ, empty when neither
// bound is set.
func (p PriceRange) Format() (string, bool) {
	switch {
	case p.Min != nil && p.Max != nil:
		if *p.Min == *p.Max {
			return formatAmount(*p.Min), true
		}
		return fmt.Sprintf("%s - %s", formatAmount(*p.Min), formatAmount(*p.Max)), true
	case p.Min != nil:
		return formatAmount(*p.Min), true
	case p.Max != nil:
		return formatAmount(*p.Max), true
	default:
		return "", false
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Car is the catalog record. Records are created only by the seed path or an
// administrative write path; the catalog core treats them as read-only.
type Car struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Brand        string             `json:"brand" bson:"brand" validate:"required,uppercase"`
	Model        string             `json:"model" bson:"model" validate:"required"`
	BodyType     BodyType           `json:"bodyType" bson:"body_type"`
	FuelType     FuelType           `json:"fuelType" bson:"fuel_type"`
	Transmission Transmission       `json:"transmission" bson:"transmission"`
	DriveType    DriveType          `json:"driveType" bson:"drive_type" default:"FWD"`

	Engine      Engine      `json:"engine" bson:"engine"`
	Performance Performance `json:"performance" bson:"performance"`
	Efficiency  Efficiency  `json:"efficiency" bson:"efficiency"`
	Price       PriceRange  `json:"price" bson:"price"`

	LaunchYear      int      `json:"launchYear" bson:"launch_year" validate:"min=1900"`
	Discontinued    bool     `json:"discontinued" bson:"discontinued"`
	SafetyRating    *float64 `json:"safetyRating,omitempty" bson:"safety_rating,omitempty" validate:"omitempty,min=0,max=5"`
	SeatingCapacity int      `json:"seatingCapacity" bson:"seating_capacity" default:"5" validate:"omitempty,min=2,max=9"`
	IsFeatured      bool     `json:"isFeatured" bson:"is_featured"`

	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty" validate:"omitempty,dive,lowercase"`
	Images      []string `json:"images,omitempty" bson:"images,omitempty"`
	KeyFeatures []string `json:"keyFeatures,omitempty" bson:"key_features,omitempty"`
	Pros        []string `json:"pros,omitempty" bson:"pros,omitempty"`
	Cons        []string `json:"cons,omitempty" bson:"cons,omitempty"`

	// Legacy free-form attributes carried on some records. Kept separate from
	// the fixed comparison schema and never consulted by it.
	Specs map[string]interface{} `json:"specs,omitempty" bson:"specs,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
