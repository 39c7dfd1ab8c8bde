// Package flow holds the search-and-forecast state of the weather screen and
// the reducer that moves it from one state to the next.
package flow

import (
	"fmt"
	"time"

	"skyglance/internal/domain"
)

// MinQueryLength is the shortest search term that is sent to the API
const MinQueryLength = 3

// Options are the fixed parameters of a screen instance
type Options struct {
	Days     int           // forecast horizon
	Debounce time.Duration // quiet period before a search fires
}

// DefaultOptions returns a 7-day horizon and a one second debounce
func DefaultOptions() Options {
	return Options{Days: 7, Debounce: time.Second}
}

// Phase is the coarse state of the screen
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
)

func (p Phase) String() string {
	if p == PhaseLoading {
		return "loading"
	}
	return "loaded"
}

// FlowError is the error signal surfaced to the renderer
type FlowError struct {
	Channel domain.Channel
	Err     error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Channel, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// ViewModel is the complete state of one screen. It is a value: Reduce never
// mutates its input, it returns a new ViewModel.
type ViewModel struct {
	opts Options

	locations []domain.LocationCandidate
	highlight int
	weather   domain.ForecastState
	loading   bool
	err       *FlowError

	debounceToken uint64
	searchSeq     uint64
	forecastSeq   uint64
}

// New creates the state of a freshly mounted screen. Loading starts true, as
// nothing can be shown until the first forecast arrives.
func New(opts Options) ViewModel {
	d := DefaultOptions()
	if opts.Days <= 0 {
		opts.Days = d.Days
	}
	if opts.Debounce <= 0 {
		opts.Debounce = d.Debounce
	}
	return ViewModel{opts: opts, loading: true}
}

// Options returns the parameters the view model was created with
func (vm ViewModel) Options() Options { return vm.opts }

// Locations returns a copy of the current candidate list
func (vm ViewModel) Locations() []domain.LocationCandidate {
	if len(vm.locations) == 0 {
		return nil
	}
	out := make([]domain.LocationCandidate, len(vm.locations))
	copy(out, vm.locations)
	return out
}

// ShowingCandidates reports whether the candidate dropdown has entries
func (vm ViewModel) ShowingCandidates() bool { return len(vm.locations) > 0 }

// Highlight returns the index of the highlighted candidate
func (vm ViewModel) Highlight() int { return vm.highlight }

// HighlightedCandidate returns the highlighted candidate, if any
func (vm ViewModel) HighlightedCandidate() (domain.LocationCandidate, bool) {
	if vm.highlight < 0 || vm.highlight >= len(vm.locations) {
		return domain.LocationCandidate{}, false
	}
	return vm.locations[vm.highlight], true
}

// Weather returns the current forecast state
func (vm ViewModel) Weather() domain.ForecastState { return vm.weather }

// HasWeatherData reports whether the forecast block may be rendered
func (vm ViewModel) HasWeatherData() bool { return vm.weather.HasWeatherData() }

// Loading reports whether a forecast fetch is outstanding
func (vm ViewModel) Loading() bool { return vm.loading }

// Err returns the last surfaced error, or nil
func (vm ViewModel) Err() *FlowError { return vm.err }

// Phase returns PhaseLoading while a forecast fetch is outstanding
func (vm ViewModel) Phase() Phase {
	if vm.loading {
		return PhaseLoading
	}
	return PhaseLoaded
}

// SearchSeq returns the sequence number of the latest search request
func (vm ViewModel) SearchSeq() uint64 { return vm.searchSeq }

// ForecastSeq returns the sequence number of the latest forecast request
func (vm ViewModel) ForecastSeq() uint64 { return vm.forecastSeq }

// DebounceToken returns the token of the latest scheduled debounce timer
func (vm ViewModel) DebounceToken() uint64 { return vm.debounceToken }
