// Package seeds holds the static dataset the seed coordinator loads into an
// empty catalog on first boot.
package seeds

import (
	"carhub/internal/models"
)

func price(min, max float64) models.PriceRange {
	return models.PriceRange{Min: &min, Max: &max, Currency: "INR"}
}

func rating(v float64) *float64 {
	return &v
}

// Cars returns a fresh copy of the dataset so callers can mutate ids and
// timestamps without touching package state.
func Cars() []*models.Car {
	return []*models.Car{
		{
			Title: "Maruti Suzuki Swift", Brand: "MARUTI SUZUKI", Model: "Swift",
			BodyType: models.BodyTypeHatchback, FuelType: models.FuelTypePetrol,
			Transmission: models.TransmissionManual, DriveType: models.DriveTypeFWD,
			Engine:      models.Engine{DisplacementCC: 1197, Cylinders: 3, Aspiration: models.AspirationNA},
			Performance: models.Performance{PowerBHP: 80, TorqueNm: 112, TopSpeedKmph: 165, ZeroToHundredSec: 12.2},
			Efficiency:  models.Efficiency{MileageKmpl: 24.8},
			Price:       price(650000, 960000),
			LaunchYear:  2024, SafetyRating: rating(4), SeatingCapacity: 5,
			Tags:        []string{"hatchback", "city", "budget"},
			KeyFeatures: []string{"9-inch touchscreen", "6 airbags", "cruise control"},
			Pros:        []string{"Efficient petrol engine", "Easy to drive in traffic"},
			Cons:        []string{"Rear seat space is tight"},
		},
		{
			Title: "Hyundai Creta", Brand: "HYUNDAI", Model: "Creta",
			BodyType: models.BodyTypeSUV, FuelType: models.FuelTypePetrol,
			Transmission: models.TransmissionCVT, DriveType: models.DriveTypeFWD,
			Engine:      models.Engine{DisplacementCC: 1497, Cylinders: 4, Aspiration: models.AspirationNA},
			Performance: models.Performance{PowerBHP: 113, TorqueNm: 144, TopSpeedKmph: 175, ZeroToHundredSec: 11.8},
			Efficiency:  models.Efficiency{MileageKmpl: 17.4},
			Price:       price(1100000, 2015000),
			LaunchYear:  2024, SafetyRating: rating(5), SeatingCapacity: 5, IsFeatured: true,
			Tags:        []string{"suv", "family", "panoramic-sunroof"},
			KeyFeatures: []string{"Panoramic sunroof", "Level 2 ADAS", "Ventilated seats"},
			Pros:        []string{"Loaded with features", "Comfortable ride"},
			Cons:        []string{"CVT feels lazy when pushed"},
		},
		{
			Title: "Tata Nexon EV", Brand: "TATA", Model: "Nexon EV",
			BodyType: models.BodyTypeEV, FuelType: models.FuelTypeEV,
			Transmission: models.TransmissionAutomatic, DriveType: models.DriveTypeFWD,
			Engine:      models.Engine{DisplacementCC: 0, Cylinders: 0},
			Performance: models.Performance{PowerBHP: 143, TorqueNm: 215, TopSpeedKmph: 150, ZeroToHundredSec: 8.9},
			Efficiency:  models.Efficiency{RangeKm: 465},
			Price:       price(1249000, 1719000),
			LaunchYear:  2023, SafetyRating: rating(5), SeatingCapacity: 5, IsFeatured: true,
			Tags:        []string{"ev", "suv", "electric"},
			KeyFeatures: []string{"465 km claimed range", "V2L charging", "Connected car tech"},
			Pros:        []string{"Strong safety record", "Low running cost"},
			Cons:        []string{"Charging network still patchy"},
		},
		{
			Title: "Mahindra Thar", Brand: "MAHINDRA", Model: "Thar",
			BodyType: models.BodyTypeSUV, FuelType: models.FuelTypeDiesel,
			Transmission: models.TransmissionManual, DriveType: models.DriveTypeFourWD,
			Engine:      models.Engine{DisplacementCC: 2184, Cylinders: 4, Turbo: true, Aspiration: models.AspirationTurbo},
			Performance: models.Performance{PowerBHP: 130, TorqueNm: 300, TopSpeedKmph: 155, ZeroToHundredSec: 13.0},
			Efficiency:  models.Efficiency{MileageKmpl: 15.2},
			Price:       price(1135000, 1760000),
			LaunchYear:  2020, SafetyRating: rating(4), SeatingCapacity: 4,
			Tags:        []string{"offroad", "4wd", "lifestyle"},
			KeyFeatures: []string{"Shift-on-fly 4WD", "Convertible top option"},
			Pros:        []string{"Genuine off-road ability"},
			Cons:        []string{"Bouncy ride on highways", "Small boot"},
		},
		{
			Title: "Toyota Innova Crysta", Brand: "TOYOTA", Model: "Innova Crysta",
			BodyType: models.BodyTypeMPV, FuelType: models.FuelTypeDiesel,
			Transmission: models.TransmissionManual, DriveType: models.DriveTypeRWD,
			Engine:      models.Engine{DisplacementCC: 2393, Cylinders: 4, Turbo: true, Aspiration: models.AspirationTurbo},
			Performance: models.Performance{PowerBHP: 148, TorqueNm: 343, TopSpeedKmph: 179, ZeroToHundredSec: 12.9},
			Efficiency:  models.Efficiency{MileageKmpl: 12.0},
			Price:       price(1999000, 2605000),
			LaunchYear:  2016, SeatingCapacity: 7,
			Tags:        []string{"mpv", "7-seater", "chauffeur"},
			KeyFeatures: []string{"Captain seats", "Proven reliability"},
			Pros:        []string{"Bulletproof reliability", "Huge cabin"},
			Cons:        []string{"Dated infotainment"},
		},
		{
			Title: "Honda City", Brand: "HONDA", Model: "City",
			BodyType: models.BodyTypeSedan, FuelType: models.FuelTypePetrol,
			Transmission: models.TransmissionCVT, DriveType: models.DriveTypeFWD,
			Engine:      models.Engine{DisplacementCC: 1498, Cylinders: 4, Aspiration: models.AspirationNA},
			Performance: models.Performance{PowerBHP: 119, TorqueNm: 145, TopSpeedKmph: 180, ZeroToHundredSec: 10.5},
			Efficiency:  models.Efficiency{MileageKmpl: 18.4},
			Price:       price(1190000, 1625000),
			LaunchYear:  2023, SafetyRating: rating(5), SeatingCapacity: 5,
			Tags:        []string{"sedan", "refined", "city"},
			KeyFeatures: []string{"LaneWatch camera", "Sunroof"},
			Pros:        []string{"Refined engine", "Spacious rear seat"},
			Cons:        []string{"Road noise at speed"},
		},
		{
			Title: "Kia Seltos Diesel", Brand: "KIA", Model: "Seltos",
			BodyType: models.BodyTypeSUV, FuelType: models.FuelTypeDiesel,
			Transmission: models.TransmissionDCT, DriveType: models.DriveTypeFWD,
			Engine:      models.Engine{DisplacementCC: 1493, Cylinders: 4, Turbo: true, Aspiration: models.AspirationTurbo},
			Performance: models.Performance{PowerBHP: 114, TorqueNm: 250, TopSpeedKmph: 170, ZeroToHundredSec: 11.5},
			Efficiency:  models.Efficiency{MileageKmpl: 20.7},
			Price:       price(1090000, 2035000),
			LaunchYear:  2023, SafetyRating: rating(3), SeatingCapacity: 5,
			Tags:        []string{"suv", "diesel", "feature-rich"},
			KeyFeatures: []string{"Dual 10.25-inch screens", "360 camera"},
			Pros:        []string{"Punchy diesel", "Premium cabin"},
			Cons:        []string{"Firm ride"},
		},
		{
			Title: "Mahindra XUV700", Brand: "MAHINDRA", Model: "XUV700",
			BodyType: models.BodyTypeSUV, FuelType: models.FuelTypePetrol,
			Transmission: models.TransmissionAutomatic, DriveType: models.DriveTypeAWD,
			Engine:      models.Engine{DisplacementCC: 1997, Cylinders: 4, Turbo: true, Aspiration: models.AspirationTurbo},
			Performance: models.Performance{PowerBHP: 197, TorqueNm: 380, TopSpeedKmph: 200, ZeroToHundredSec: 9.9},
			Efficiency:  models.Efficiency{MileageKmpl: 13.0},
			Price:       price(1399000, 2660000),
			LaunchYear:  2021, SafetyRating: rating(5), SeatingCapacity: 7, IsFeatured: true,
			Tags:        []string{"suv", "7-seater", "adas"},
			KeyFeatures: []string{"ADAS suite", "Dual HD screens", "AdrenoX connect"},
			Pros:        []string{"Performance for the price"},
			Cons:        []string{"Long waiting periods"},
		},
		{
			Title: "BMW M340i", Brand: "BMW", Model: "M340i",
			BodyType: models.BodyTypeSedan, FuelType: models.FuelTypePetrol,
			Transmission: models.TransmissionAutomatic, DriveType: models.DriveTypeAWD,
			Engine:      models.Engine{DisplacementCC: 2998, Cylinders: 6, Turbo: true, Aspiration: models.AspirationTurbo},
			Performance: models.Performance{PowerBHP: 382, TorqueNm: 500, TopSpeedKmph: 250, ZeroToHundredSec: 4.4},
			Efficiency:  models.Efficiency{MileageKmpl: 10.4},
			Price:       price(7450000, 7450000),
			LaunchYear:  2022, SeatingCapacity: 5,
			Tags:        []string{"performance", "luxury", "sedan"},
			KeyFeatures: []string{"B58 inline-six", "Adaptive M suspension"},
			Pros:        []string{"Savage straight-line pace"},
			Cons:        []string{"Costly maintenance"},
		},
		{
			Title: "Maruti Suzuki Wagon R CNG", Brand: "MARUTI SUZUKI", Model: "Wagon R",
			BodyType: models.BodyTypeHatchback, FuelType: models.FuelTypeCNG,
			Transmission: models.TransmissionAMT, DriveType: models.DriveTypeFWD,
			Engine:      models.Engine{DisplacementCC: 998, Cylinders: 3, Aspiration: models.AspirationNA},
			Performance: models.Performance{PowerBHP: 56, TorqueNm: 82, TopSpeedKmph: 140, ZeroToHundredSec: 18.0},
			Efficiency:  models.Efficiency{MileageKmpl: 34.0},
			Price:       price(655000, 725000),
			LaunchYear:  2022, SafetyRating: rating(2), SeatingCapacity: 5,
			Tags:        []string{"cng", "budget", "tall-boy"},
			KeyFeatures: []string{"Factory-fitted CNG", "Flat floor"},
			Pros:        []string{"Lowest running cost in the class"},
			Cons:        []string{"Sparse safety kit"},
		},
		{
			Title: "Porsche 911 Carrera", Brand: "PORSCHE", Model: "911 Carrera",
			BodyType: models.BodyTypeSports, FuelType: models.FuelTypePetrol,
			Transmission: models.TransmissionDCT, DriveType: models.DriveTypeRWD,
			Engine:      models.Engine{DisplacementCC: 2981, Cylinders: 6, Turbo: true, Aspiration: models.AspirationTurbo},
			Performance: models.Performance{PowerBHP: 379, TorqueNm: 450, TopSpeedKmph: 293, ZeroToHundredSec: 4.2},
			Efficiency:  models.Efficiency{MileageKmpl: 9.0},
			Price:       price(19900000, 19900000),
			LaunchYear:  2023, SeatingCapacity: 4,
			Tags:        []string{"sports", "icon", "track"},
			KeyFeatures: []string{"Rear-engine layout", "PDK gearbox"},
			Pros:        []string{"Everyday usable sports car"},
			Cons:        []string{"Options add up fast"},
		},
		{
			Title: "Ambassador Classic", Brand: "HINDUSTAN MOTORS", Model: "Ambassador",
			BodyType: models.BodyTypeSedan, FuelType: models.FuelTypeDiesel,
			Transmission: models.TransmissionManual, DriveType: models.DriveTypeRWD,
			Engine:      models.Engine{DisplacementCC: 1489, Cylinders: 4, Aspiration: models.AspirationNA},
			Performance: models.Performance{PowerBHP: 35, TorqueNm: 75, TopSpeedKmph: 110, ZeroToHundredSec: 28.0},
			Efficiency:  models.Efficiency{MileageKmpl: 12.5},
			Price:       price(515000, 515000),
			LaunchYear:  1957, Discontinued: true, SeatingCapacity: 5,
			Tags:        []string{"classic", "discontinued", "heritage"},
			KeyFeatures: []string{"Bench seats", "Sofa-like ride"},
			Pros:        []string{"Unmatched road presence"},
			Cons:        []string{"Everything else"},
			Specs:       map[string]interface{}{"body_on_frame": true, "era": "pre-liberalization"},
		},
	}
}
