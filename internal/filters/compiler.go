package filters

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// InvalidFilterError reports a recognized query parameter whose value could
// not be parsed. Absent parameters never produce it.
type InvalidFilterError struct {
	Field  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &InvalidFilterError{Field: field, Reason: reason}
}

// Recognized listing parameters. Anything else in the query string is
// ignored, never an error.
const (
	paramQuery        = "q"
	paramBrand        = "brand"
	paramBodyType     = "bodyType"
	paramFuelType     = "fuelType"
	paramTransmission = "transmission"
	paramMinPrice     = "minPrice"
	paramMaxPrice     = "maxPrice"
	paramMinPower     = "minPower"
	paramLaunchYear   = "launchYear"
	paramDiscontinued = "discontinued"
	paramTags         = "tags"
)

// Compile translates listing query parameters into a store predicate. The
// result is a conjunction of per-field predicates; validation completes before
// anything reaches the store.
func Compile(params map[string]string) (bson.M, error) {
	filter := bson.M{}

	if q := strings.TrimSpace(params[paramQuery]); q != "" {
		filter["$text"] = bson.M{"$search": q}
	}

	if brand := strings.TrimSpace(params[paramBrand]); brand != "" {
		// Brands are stored uppercase; the case-insensitive regex makes the
		// match partial and case-blind either way.
		filter["brand"] = bson.M{"$regex": strings.ToUpper(brand), "$options": "i"}
	}

	for param, field := range map[string]string{
		paramBodyType:     "body_type",
		paramFuelType:     "fuel_type",
		paramTransmission: "transmission",
	} {
		if v := strings.TrimSpace(params[param]); v != "" {
			filter[field] = v
		}
	}

	if err := compilePrice(params, filter); err != nil {
		return nil, err
	}

	if raw := strings.TrimSpace(params[paramMinPower]); raw != "" {
		power, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, invalid(paramMinPower, "must be numeric")
		}
		filter["performance.power_bhp"] = bson.M{"$gte": power}
	}

	if raw := strings.TrimSpace(params[paramLaunchYear]); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, invalid(paramLaunchYear, "must be numeric")
		}
		filter["launch_year"] = year
	}

	if raw, ok := params[paramDiscontinued]; ok && strings.TrimSpace(raw) != "" {
		filter["discontinued"] = strings.TrimSpace(raw) == "true"
	}

	if tags := splitTags(params[paramTags]); len(tags) > 0 {
		filter["tags"] = bson.M{"$all": tags}
	}

	return filter, nil
}

// compilePrice applies the interval overlap policy. A record's price occupies
// [price.min, price.max]; it matches when either bound lands inside the
// requested range, or the record's interval spans the whole request.
func compilePrice(params map[string]string, filter bson.M) error {
	minRaw := strings.TrimSpace(params[paramMinPrice])
	maxRaw := strings.TrimSpace(params[paramMaxPrice])
	if minRaw == "" && maxRaw == "" {
		return nil
	}

	var minPrice, maxPrice float64
	var err error
	if minRaw != "" {
		if minPrice, err = strconv.ParseFloat(minRaw, 64); err != nil {
			return invalid(paramMinPrice, "must be numeric")
		}
	}
	if maxRaw != "" {
		if maxPrice, err = strconv.ParseFloat(maxRaw, 64); err != nil {
			return invalid(paramMaxPrice, "must be numeric")
		}
	}

	switch {
	case minRaw != "" && maxRaw != "":
		if minPrice > maxPrice {
			return invalid(paramMinPrice, "minPrice must not exceed maxPrice")
		}
		filter["$or"] = []bson.M{
			{"price.min": bson.M{"$gte": minPrice, "$lte": maxPrice}},
			{"price.max": bson.M{"$gte": minPrice, "$lte": maxPrice}},
			{"price.min": bson.M{"$lte": minPrice}, "price.max": bson.M{"$gte": maxPrice}},
		}
	case minRaw != "":
		filter["$or"] = []bson.M{
			{"price.max": bson.M{"$gte": minPrice}},
			{"price.min": bson.M{"$gte": minPrice}},
		}
	default:
		filter["$or"] = []bson.M{
			{"price.min": bson.M{"$lte": maxPrice}},
			{"price.max": bson.M{"$lte": maxPrice}},
		}
	}
	return nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
