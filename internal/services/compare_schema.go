package services

import (
	"strconv"

	"carhub/internal/models"
)

// compareField is one row of the fixed specification schema. render returns
// the record's canonical string at the field path, or ok=false when the
// record has no value there. Zero is a value; only genuinely unset fields
// (nil pointers, empty strings) are absent.
type compareField struct {
	key    string
	label  string
	render func(c *models.Car) (string, bool)
}

// compareSchema is declaration-ordered; the comparison matrix preserves this
// order, never an alphabetical or data-driven one.
var compareSchema = []compareField{
	{"brand", "Brand", func(c *models.Car) (string, bool) { return presentString(c.Brand) }},
	{"model", "Model", func(c *models.Car) (string, bool) { return presentString(c.Model) }},
	{"bodyType", "Body Type", func(c *models.Car) (string, bool) { return presentString(string(c.BodyType)) }},
	{"fuelType", "Fuel Type", func(c *models.Car) (string, bool) { return presentString(string(c.FuelType)) }},
	{"transmission", "Transmission", func(c *models.Car) (string, bool) { return presentString(string(c.Transmission)) }},
	{"driveType", "Drive Type", func(c *models.Car) (string, bool) { return presentString(string(c.DriveType)) }},
	{"price", "Price", func(c *models.Car) (string, bool) { return c.Price.Format() }},
	{"engine.displacement", "Displacement (cc)", func(c *models.Car) (string, bool) { return renderInt(c.Engine.DisplacementCC), true }},
	{"engine.cylinders", "Cylinders", func(c *models.Car) (string, bool) { return renderInt(c.Engine.Cylinders), true }},
	{"engine.turbo", "Turbocharged", func(c *models.Car) (string, bool) { return renderBool(c.Engine.Turbo), true }},
	{"engine.aspiration", "Aspiration", func(c *models.Car) (string, bool) { return presentString(string(c.Engine.Aspiration)) }},
	{"performance.powerBHP", "Power (BHP)", func(c *models.Car) (string, bool) { return renderFloat(c.Performance.PowerBHP), true }},
	{"performance.torqueNm", "Torque (Nm)", func(c *models.Car) (string, bool) { return renderFloat(c.Performance.TorqueNm), true }},
	{"performance.topSpeed", "Top Speed (km/h)", func(c *models.Car) (string, bool) { return renderFloat(c.Performance.TopSpeedKmph), true }},
	{"performance.zeroToHundred", "0-100 km/h (s)", func(c *models.Car) (string, bool) { return renderFloat(c.Performance.ZeroToHundredSec), true }},
	{"efficiency.mileage", "Mileage (km/l)", func(c *models.Car) (string, bool) { return renderFloat(c.Efficiency.MileageKmpl), true }},
	{"efficiency.range", "Range (km)", func(c *models.Car) (string, bool) { return renderFloat(c.Efficiency.RangeKm), true }},
	{"launchYear", "Launch Year", func(c *models.Car) (string, bool) { return renderInt(c.LaunchYear), true }},
	{"safetyRating", "Safety Rating", func(c *models.Car) (string, bool) {
		if c.SafetyRating == nil {
			return "", false
		}
		return renderFloat(*c.SafetyRating), true
	}},
	{"seatingCapacity", "Seating Capacity", func(c *models.Car) (string, bool) { return renderInt(c.SeatingCapacity), true }},
}

func presentString(s string) (string, bool) {
	return s, s != ""
}

func renderInt(v int) string {
	return strconv.Itoa(v)
}

func renderFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
