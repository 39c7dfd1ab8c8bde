package domain

import "errors"

var (
	// ErrNetwork is returned when the weather API could not be reached
	ErrNetwork = errors.New("network error")
	// ErrCityNotFound is returned when the API has no location matching the query
	ErrCityNotFound = errors.New("city not found")
	// ErrInvalidResponse is returned when the API answered with no usable data
	ErrInvalidResponse = errors.New("invalid response")
	// ErrEmptyQuery is returned for blank queries; they never reach the API
	ErrEmptyQuery = errors.New("empty query")
)
