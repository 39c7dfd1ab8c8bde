package flow

import (
	"strings"
	"unicode/utf8"

	"skyglance/internal/domain"
)

// Reduce applies ev to vm and returns the next state together with the
// effects the caller must run. vm itself is left untouched.
func Reduce(vm ViewModel, ev Event) (ViewModel, []Effect) {
	switch e := ev.(type) {
	case Initialize:
		return vm.fetchForecast(e.City)

	case TextChanged:
		vm.debounceToken++
		return vm, []Effect{ScheduleDebounce{Token: vm.debounceToken, Text: e.Text, Delay: vm.opts.Debounce}}

	case DebounceElapsed:
		if e.Token != vm.debounceToken {
			return vm, nil
		}
		if !searchable(e.Text) {
			return vm, nil
		}
		vm.searchSeq++
		return vm, []Effect{
			SearchLocations{Seq: vm.searchSeq, Query: e.Text},
			Notify{Event: domain.SearchIssuedEvent{Seq: vm.searchSeq, Query: e.Text}},
		}

	case SearchSucceeded:
		if e.Seq != vm.searchSeq {
			return vm, []Effect{discarded(domain.ChannelSearch, e.Seq, vm.searchSeq)}
		}
		vm.locations = append([]domain.LocationCandidate(nil), e.Locations...)
		vm.highlight = 0
		if vm.err != nil && vm.err.Channel == domain.ChannelSearch {
			vm.err = nil
		}
		return vm, []Effect{Notify{Event: domain.SearchAppliedEvent{Seq: e.Seq, Count: len(e.Locations)}}}

	case SearchFailed:
		if e.Seq != vm.searchSeq {
			return vm, []Effect{discarded(domain.ChannelSearch, e.Seq, vm.searchSeq)}
		}
		vm.err = &FlowError{Channel: domain.ChannelSearch, Err: e.Err}
		return vm, []Effect{failed(domain.ChannelSearch, e.Err)}

	case LocationSelected:
		return vm.dropCandidates().fetchForecast(e.Candidate.Name)

	case ForecastSucceeded:
		if e.Seq != vm.forecastSeq {
			return vm, []Effect{discarded(domain.ChannelForecast, e.Seq, vm.forecastSeq)}
		}
		vm.weather = e.State
		vm.loading = false
		name := ""
		if e.State.Location != nil {
			name = e.State.Location.Name
		}
		return vm, []Effect{Notify{Event: domain.ForecastAppliedEvent{Seq: e.Seq, Location: name}}}

	case ForecastFailed:
		if e.Seq != vm.forecastSeq {
			return vm, []Effect{discarded(domain.ChannelForecast, e.Seq, vm.forecastSeq)}
		}
		vm.loading = false
		vm.err = &FlowError{Channel: domain.ChannelForecast, Err: e.Err}
		return vm, []Effect{failed(domain.ChannelForecast, e.Err)}

	case Refresh:
		if vm.weather.Location == nil || vm.weather.Location.Name == "" {
			return vm, nil
		}
		return vm.dropCandidates().fetchForecast(vm.weather.Location.Name)

	case MoveHighlight:
		if len(vm.locations) == 0 {
			return vm, nil
		}
		vm.highlight += e.Delta
		if vm.highlight < 0 {
			vm.highlight = 0
		}
		if vm.highlight >= len(vm.locations) {
			vm.highlight = len(vm.locations) - 1
		}
		return vm, nil

	case DismissError:
		vm.err = nil
		return vm, nil
	}

	return vm, nil
}

// dropCandidates closes the dropdown. Pending debounce timers and searches
// issued before this point are stale afterwards.
func (vm ViewModel) dropCandidates() ViewModel {
	vm.locations = nil
	vm.highlight = 0
	vm.debounceToken++
	vm.searchSeq++
	return vm
}

// fetchForecast starts a forecast request for city on the forecast channel
func (vm ViewModel) fetchForecast(city string) (ViewModel, []Effect) {
	vm.loading = true
	vm.err = nil
	vm.forecastSeq++
	return vm, []Effect{
		FetchForecast{Seq: vm.forecastSeq, City: city, Days: vm.opts.Days},
		Notify{Event: domain.ForecastIssuedEvent{Seq: vm.forecastSeq, City: city, Days: vm.opts.Days}},
	}
}

// searchable reports whether a settled search term should reach the API
func searchable(text string) bool {
	return utf8.RuneCountInString(text) >= MinQueryLength && strings.TrimSpace(text) != ""
}

func discarded(ch domain.Channel, seq, latest uint64) Effect {
	return Notify{Event: domain.ResponseDiscardedEvent{Channel: ch, Seq: seq, Latest: latest}}
}

func failed(ch domain.Channel, err error) Effect {
	return Notify{Event: domain.ErrorEvent{Channel: ch, Message: err.Error(), Err: err}}
}
