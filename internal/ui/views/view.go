package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skyglance/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Loading     bool
	Spinner     string // current spinner frame
	SearchInput string // rendered search field
	Candidates  []domain.LocationCandidate
	Highlight   int
	Weather     domain.ForecastState
	Error       string
	Help        string // rendered key help
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Loading {
		return r.renderLoading(state)
	}

	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("skyglance"))
	content.WriteString("\n")
	content.WriteString(r.styles.SearchBox.Render(state.SearchInput))
	content.WriteString("\n")

	if len(state.Candidates) > 0 {
		content.WriteString(r.renderCandidates(state))
		content.WriteString("\n")
	}

	// Partial data never renders.
	if state.Weather.HasWeatherData() {
		content.WriteString("\n")
		content.WriteString(r.renderForecast(state))
		content.WriteString("\n")
	}

	if state.Error != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.StatusError.Render("Error: " + state.Error))
		content.WriteString("\n")
	}

	if state.Help != "" {
		current := content.String()
		used := strings.Count(current, "\n") + 1
		// Main style adds one line of padding above and below.
		if pad := state.Height - 2 - used - 1; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return r.styles.Main.Render(content.String())
}

// renderLoading shows only the spinner, centered when the size is known
func (r *Renderer) renderLoading(state ViewState) string {
	spinner := r.styles.Spinner.Render(state.Spinner + " Loading forecast...")
	if state.Width <= 0 || state.Height <= 0 {
		return spinner
	}
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, spinner)
}

// renderCandidates renders the dropdown of search results
func (r *Renderer) renderCandidates(state ViewState) string {
	lines := make([]string, 0, len(state.Candidates))
	for i, c := range state.Candidates {
		label := "⌖ " + c.Label()
		if i == state.Highlight {
			lines = append(lines, r.styles.Highlight.Render(label))
		} else {
			lines = append(lines, r.styles.Candidate.Render(label))
		}
	}
	return r.styles.Dropdown.Render(strings.Join(lines, "\n"))
}
