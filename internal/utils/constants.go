package utils

// Application Constants
const (
	AppName    = "CarHub"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "INR"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 12
	MaxPageSize     = 50
	MinPageSize     = 1

	// Catalog
	CarsCollection     = "cars"
	DefaultSort        = "newest"
	MaxCompareCars     = 4
	MinCompareCars     = 2
	MaxFeaturedLimit   = 12
	LaunchYearFloor    = 1900
	LaunchYearHeadroom = 2 // years past the current one

	// Response status
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInternalServer   = "Internal server error"
	ErrValidationFailed = "Validation failed"
	ErrNotFound         = "Resource not found"
	ErrStoreUnavailable = "Catalog store unavailable"
	ErrInvalidID        = "Invalid car ID"
)
