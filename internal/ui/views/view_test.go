package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"skyglance/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func cebu() domain.ForecastState {
	return domain.ForecastState{
		Location: &domain.LocationInfo{Name: "Cebu", Region: "Cebu", Country: "Philippines", TzID: "Asia/Manila", Localtime: "2026-10-19 10:00"},
		Current: &domain.CurrentConditions{
			TempC:      30.5,
			FeelsLikeC: 35,
			Condition:  domain.Condition{Text: "Partly cloudy"},
			WindKph:    14.4,
			Humidity:   70,
			VisKm:      10,
		},
		Forecast: &domain.Forecast{ForecastDay: []domain.DayForecast{
			{Date: "2026-10-19", Day: &domain.DaySummary{AvgTempC: ptr(28.5), MinTempC: 26, MaxTempC: 31, Condition: domain.Condition{Text: "Patchy rain nearby"}}},
			{Date: "2026-10-20", Day: &domain.DaySummary{AvgTempC: nil, Condition: domain.Condition{Text: "Sunny"}}},
			{Date: "", Day: &domain.DaySummary{AvgTempC: ptr(1)}},
			{Date: "2026-10-22", Day: nil},
		}},
	}
}

func TestLoadingShowsOnlySpinner(t *testing.T) {
	out := NewRenderer().Render(ViewState{
		Width:      80,
		Height:     24,
		Loading:    true,
		Spinner:    "*",
		Candidates: []domain.LocationCandidate{{Name: "London", Country: "UK"}},
		Weather:    cebu(),
	})

	assert.Contains(t, out, "Loading forecast")
	assert.NotContains(t, out, "London")
	assert.NotContains(t, out, "Cebu")
	assert.NotContains(t, out, "skyglance")
}

func TestRenderGateNeedsCurrentAndLocation(t *testing.T) {
	r := NewRenderer()
	full := cebu()

	for name, w := range map[string]domain.ForecastState{
		"empty":         {},
		"location only": {Location: full.Location, Forecast: full.Forecast},
		"current only":  {Current: full.Current, Forecast: full.Forecast},
	} {
		for _, loading := range []bool{false, true} {
			out := r.Render(ViewState{Weather: w, Loading: loading, SearchInput: "> "})
			assert.NotContains(t, out, "Daily Forecast", name)
			assert.NotContains(t, out, "Philippines", name)
			assert.NotContains(t, out, "30.5°", name)
		}
	}
}

func TestRenderForecast(t *testing.T) {
	out := NewRenderer().Render(ViewState{Width: 120, Height: 40, Weather: cebu(), SearchInput: "> "})

	assert.Contains(t, out, "skyglance")
	assert.Contains(t, out, "Cebu, Philippines")
	assert.Contains(t, out, "30.5°")
	assert.Contains(t, out, "Partly cloudy")
	assert.Contains(t, out, "14.4 km")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "10km")
	assert.Contains(t, out, "Daily Forecast")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "29°")
	assert.Contains(t, out, "Tuesday")
	assert.Contains(t, out, "--")
	// Days without a date or summary are skipped.
	assert.NotContains(t, out, "1°")
	assert.NotContains(t, out, "Thursday")
}

func TestRenderLocationWithoutCountry(t *testing.T) {
	w := cebu()
	w.Location = &domain.LocationInfo{Name: "Cebu"}
	out := NewRenderer().Render(ViewState{Weather: w})

	assert.Contains(t, out, "Cebu")
	assert.NotContains(t, out, "Cebu,")
}

func TestRenderNoForecastDays(t *testing.T) {
	w := cebu()
	w.Forecast = nil
	out := NewRenderer().Render(ViewState{Weather: w})

	assert.Contains(t, out, "No forecast data available")
}

func TestRenderCandidates(t *testing.T) {
	out := NewRenderer().Render(ViewState{
		Weather: cebu(),
		Candidates: []domain.LocationCandidate{
			{Name: "London", Country: "UK"},
			{Name: "Londrina", Country: "Brazil"},
		},
		Highlight: 1,
	})

	assert.Contains(t, out, "London, UK")
	assert.Contains(t, out, "Londrina, Brazil")
	assert.Less(t, strings.Index(out, "London, UK"), strings.Index(out, "Londrina, Brazil"))
	// Dropdown comes before the forecast.
	assert.Less(t, strings.Index(out, "Londrina, Brazil"), strings.Index(out, "Daily Forecast"))
}

func TestRenderCandidatesWithoutForecast(t *testing.T) {
	out := NewRenderer().Render(ViewState{
		Candidates: []domain.LocationCandidate{{Name: "London", Country: "UK"}},
	})
	assert.Contains(t, out, "London, UK")
	assert.NotContains(t, out, "Daily Forecast")
}

func TestRenderError(t *testing.T) {
	out := NewRenderer().Render(ViewState{Weather: cebu(), Error: "forecast failed: city not found"})
	assert.Contains(t, out, "Error: forecast failed: city not found")
	assert.Contains(t, out, "Cebu, Philippines")
}

func TestRenderHelp(t *testing.T) {
	out := NewRenderer().Render(ViewState{Height: 30, Help: "esc quit"})
	assert.Contains(t, out, "esc quit")
}

func TestDayCardsWrapToWidth(t *testing.T) {
	w := cebu()
	days := make([]domain.DayForecast, 0, 7)
	for _, d := range []string{"2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23", "2026-10-24", "2026-10-25"} {
		days = append(days, domain.DayForecast{Date: d, Day: &domain.DaySummary{AvgTempC: ptr(20)}})
	}
	w.Forecast = &domain.Forecast{ForecastDay: days}

	narrow := NewRenderer().Render(ViewState{Width: 40, Weather: w})
	wide := NewRenderer().Render(ViewState{Width: 200, Weather: w})

	assert.Contains(t, narrow, "Sunday")
	assert.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "30", FormatNumber(30))
	assert.Equal(t, "30.5", FormatNumber(30.5))
	assert.Equal(t, "--", FormatAvgTemp(nil))
	assert.Equal(t, "29°", FormatAvgTemp(ptr(28.5)))
	assert.Equal(t, "-2°", FormatAvgTemp(ptr(-2.5)))
	assert.Equal(t, "28°", FormatAvgTemp(ptr(28.4)))
	assert.Equal(t, "Monday", DayName("2026-10-19"))
	assert.Equal(t, "soon", DayName("soon"))
}

func TestForecastReport(t *testing.T) {
	out := ForecastReport(cebu())

	assert.Contains(t, out, "Cebu, Philippines")
	assert.Contains(t, out, "Local time: 2026-10-19 10:00 (Asia/Manila)")
	assert.Contains(t, out, "Now: 30.5°C, feels like 35°C, Partly cloudy")
	assert.Contains(t, out, "CONDITION")
	assert.Contains(t, out, "Patchy rain nearby")
	assert.Contains(t, out, "Tuesday")
	assert.NotContains(t, out, "2026-10-22")

	assert.Contains(t, ForecastReport(domain.ForecastState{}), "No forecast data available")
}
