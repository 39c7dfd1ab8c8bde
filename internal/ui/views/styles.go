package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	SearchBox   lipgloss.Style
	Dropdown    lipgloss.Style
	Candidate   lipgloss.Style
	Highlight   lipgloss.Style
	Location    lipgloss.Style
	Country     lipgloss.Style
	Temperature lipgloss.Style
	Condition   lipgloss.Style
	Stat        lipgloss.Style
	Section     lipgloss.Style
	DayCard     lipgloss.Style
	DayName     lipgloss.Style
	DayTemp     lipgloss.Style
	Spinner     lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Candidate: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Location:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Country:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Temperature: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Condition:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		Stat:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		DayCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Width(12).
			Align(lipgloss.Center),
		DayName:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		DayTemp:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
