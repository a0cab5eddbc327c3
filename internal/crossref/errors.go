package crossref

import (
	"errors"
	"fmt"
)

// Common errors returned by the Crossref client.
var (
	// ErrNotFound indicates the DOI is not registered with Crossref.
	ErrNotFound = errors.New("DOI not found in Crossref")

	// ErrUnavailable indicates the lookup could not be completed: transport
	// failure, timeout, or a non-success status other than 404.
	ErrUnavailable = errors.New("Crossref unavailable")

	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response from Crossref")

	// ErrInvalidDOI indicates the input does not look like a DOI.
	ErrInvalidDOI = errors.New("invalid DOI")
)

// APIError represents a non-success HTTP status from Crossref.
type APIError struct {
	StatusCode int
	DOI        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Crossref API error (status %d) for DOI %s", e.StatusCode, e.DOI)
}

// Unwrap maps the status code onto the package sentinels so callers can
// use errors.Is.
func (e *APIError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return ErrUnavailable
}

// IsNotFound returns true if the error indicates the DOI is unknown.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable returns true if the lookup failed for reasons other than the
// DOI being unknown.
func IsUnavailable(err error) bool {
	return err != nil && !IsNotFound(err)
}
