package models

// CompareRequest is the payload of POST /cars/compare. Between 2 and 4 ids,
// each a 24-hex store identifier, compared in the order given.
type CompareRequest struct {
	IDs []string `json:"ids" validate:"required,min=2,max=4,dive,object_id"`
}

// CompareValue is one record's rendering of a comparison field. Value is nil
// when the record has no value at that field path.
type CompareValue struct {
	CarID string  `json:"carId"`
	Value *string `json:"value"`
}

// CompareRow aligns one specification field across the compared records.
// Values preserve the request's id order.
type CompareRow struct {
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	Values  []CompareValue `json:"values"`
	Differs bool           `json:"differs"`
}

type ComparisonResult struct {
	Cars       []*Car       `json:"cars"`
	Comparison []CompareRow `json:"comparison"`
}

// CarListResult is the paged listing payload of GET /cars.
type CarListResult struct {
	Data       []*Car `json:"data"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int64  `json:"total"`
	Limit      int    `json:"limit"`
}
