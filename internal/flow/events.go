package flow

import (
	"time"

	"skyglance/internal/domain"
)

// Event is an input to Reduce
type Event interface {
	isEvent()
}

// Initialize fetches the default city's forecast when the screen mounts
type Initialize struct {
	City string
}

// TextChanged is sent for every change of the search field
type TextChanged struct {
	Text string
}

// DebounceElapsed is sent when a debounce timer scheduled by ScheduleDebounce fires
type DebounceElapsed struct {
	Token uint64
	Text  string
}

// SearchSucceeded carries the response of a SearchLocations effect
type SearchSucceeded struct {
	Seq       uint64
	Locations []domain.LocationCandidate
}

// SearchFailed carries the error of a SearchLocations effect
type SearchFailed struct {
	Seq uint64
	Err error
}

// LocationSelected is sent when the user picks a candidate
type LocationSelected struct {
	Candidate domain.LocationCandidate
}

// ForecastSucceeded carries the response of a FetchForecast effect
type ForecastSucceeded struct {
	Seq   uint64
	State domain.ForecastState
}

// ForecastFailed carries the error of a FetchForecast effect
type ForecastFailed struct {
	Seq uint64
	Err error
}

// Refresh re-fetches the forecast of the location on screen
type Refresh struct{}

// MoveHighlight moves the candidate highlight by Delta, clamped to the list
type MoveHighlight struct {
	Delta int
}

// DismissError clears the error signal
type DismissError struct{}

func (Initialize) isEvent()        {}
func (TextChanged) isEvent()       {}
func (DebounceElapsed) isEvent()   {}
func (SearchSucceeded) isEvent()   {}
func (SearchFailed) isEvent()      {}
func (LocationSelected) isEvent()  {}
func (ForecastSucceeded) isEvent() {}
func (ForecastFailed) isEvent()    {}
func (Refresh) isEvent()           {}
func (MoveHighlight) isEvent()     {}
func (DismissError) isEvent()      {}

// Effect is work Reduce asks the caller to perform
type Effect interface {
	isEffect()
}

// ScheduleDebounce asks for DebounceElapsed{Token, Text} to be sent after Delay
type ScheduleDebounce struct {
	Token uint64
	Text  string
	Delay time.Duration
}

// SearchLocations asks for a location search; the result must come back
// tagged with Seq
type SearchLocations struct {
	Seq   uint64
	Query string
}

// FetchForecast asks for a forecast; the result must come back tagged with Seq
type FetchForecast struct {
	Seq  uint64
	City string
	Days int
}

// Notify asks for a domain event to be published
type Notify struct {
	Event domain.DomainEvent
}

func (ScheduleDebounce) isEffect() {}
func (SearchLocations) isEffect()  {}
func (FetchForecast) isEffect()    {}
func (Notify) isEffect()           {}
