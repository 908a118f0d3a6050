package services

import (
	"fmt"
	"strings"
)

// InvalidRequestError is a malformed compare payload: missing ids, a count
// outside [2,4], or an id that is not a store identifier.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// NotFoundError carries every requested id with no matching record.
// Comparison is all-or-nothing; a single missing id fails the whole request.
type NotFoundError struct {
	Missing []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cars not found: %s", strings.Join(e.Missing, ", "))
}
