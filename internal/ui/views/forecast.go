package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"skyglance/internal/domain"
)

const dateLayout = "2006-01-02"

// renderForecast renders the forecast block. Callers check HasWeatherData first.
func (r *Renderer) renderForecast(state ViewState) string {
	w := state.Weather
	var b strings.Builder

	if header := r.locationHeader(w.Location); header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}

	b.WriteString(r.styles.Temperature.Render(FormatNumber(w.Current.TempC) + "°"))
	if text := w.Current.Condition.Text; text != "" {
		b.WriteString("  ")
		b.WriteString(r.styles.Condition.Render(text))
	}
	b.WriteString("\n\n")

	stats := []string{
		"wind " + r.styles.Stat.Render(FormatNumber(w.Current.WindKph)+" km"),
		"humidity " + r.styles.Stat.Render(strconv.Itoa(w.Current.Humidity)+"%"),
		"visibility " + r.styles.Stat.Render(FormatNumber(w.Current.VisKm)+"km"),
	}
	b.WriteString(strings.Join(stats, "   "))
	b.WriteString("\n")

	b.WriteString(r.styles.Section.Render("Daily Forecast"))
	b.WriteString("\n")
	b.WriteString(r.renderDays(w.Days(), state.Width))

	return b.String()
}

// locationHeader renders "Name, Country", or just the name when there is no country
func (r *Renderer) locationHeader(loc *domain.LocationInfo) string {
	if loc == nil || loc.Name == "" {
		return ""
	}
	if loc.Country == "" {
		return r.styles.Location.Render(loc.Name)
	}
	return r.styles.Location.Render(loc.Name+",") + " " + r.styles.Country.Render(loc.Country)
}

// renderDays lays out one card per day, wrapping rows to the terminal width
func (r *Renderer) renderDays(days []domain.DayForecast, width int) string {
	if len(days) == 0 {
		return r.styles.Dim.Render("No forecast data available")
	}

	var cards []string
	for _, d := range days {
		if d.Date == "" || d.Day == nil {
			continue
		}
		body := r.styles.DayName.Render(DayName(d.Date)) + "\n" +
			r.styles.DayTemp.Render(FormatAvgTemp(d.Day.AvgTempC))
		cards = append(cards, r.styles.DayCard.Render(body))
	}
	if len(cards) == 0 {
		return ""
	}

	perRow := len(cards)
	if width > 0 {
		cardWidth := lipgloss.Width(cards[0]) + 1
		// Main style pads two columns on each side.
		if n := (width - 4) / cardWidth; n >= 1 && n < perRow {
			perRow = n
		}
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		row := make([]string, 0, 2*(end-start))
		for i, c := range cards[start:end] {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// DayName returns the English weekday of a YYYY-MM-DD date, or the raw string
// when it does not parse
func DayName(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Weekday().String()
}

// FormatAvgTemp rounds half up to whole degrees, "--" when unknown
func FormatAvgTemp(avg *float64) string {
	if avg == nil {
		return "--"
	}
	return fmt.Sprintf("%d°", int(math.Floor(*avg+0.5)))
}

// FormatNumber prints v with as few digits as needed: 30 → "30", 30.5 → "30.5"
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ForecastReport renders the forecast as plain text for the pager
func ForecastReport(w domain.ForecastState) string {
	var b strings.Builder

	if w.Location != nil {
		name := w.Location.Name
		if w.Location.Region != "" && w.Location.Region != w.Location.Name {
			name += ", " + w.Location.Region
		}
		if w.Location.Country != "" {
			name += ", " + w.Location.Country
		}
		fmt.Fprintf(&b, "%s\n", name)
		if w.Location.Localtime != "" {
			fmt.Fprintf(&b, "Local time: %s (%s)\n", w.Location.Localtime, w.Location.TzID)
		}
		b.WriteString("\n")
	}

	if c := w.Current; c != nil {
		fmt.Fprintf(&b, "Now: %s°C, feels like %s°C, %s\n", FormatNumber(c.TempC), FormatNumber(c.FeelsLikeC), c.Condition.Text)
		fmt.Fprintf(&b, "Wind %s km/h, humidity %d%%, visibility %s km\n", FormatNumber(c.WindKph), c.Humidity, FormatNumber(c.VisKm))
		if c.LastUpdated != "" {
			fmt.Fprintf(&b, "Last updated: %s\n", c.LastUpdated)
		}
		b.WriteString("\n")
	}

	days := w.Days()
	if len(days) == 0 {
		b.WriteString("No forecast data available\n")
		return b.String()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DATE", "DAY", "MIN", "AVG", "MAX", "CONDITION")
	for _, d := range days {
		if d.Date == "" || d.Day == nil {
			continue
		}
		t.Row(
			d.Date,
			DayName(d.Date),
			FormatNumber(d.Day.MinTempC)+"°",
			FormatAvgTemp(d.Day.AvgTempC),
			FormatNumber(d.Day.MaxTempC)+"°",
			d.Day.Condition.Text,
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	return b.String()
}
