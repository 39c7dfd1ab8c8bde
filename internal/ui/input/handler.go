package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"skyglance/internal/ui/input/types"
)

// Handler maps key presses to actions
type Handler struct {
	keys KeyMap
}

// New creates a handler with the default key map
func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the key map, for rendering help
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey returns the actions for msg and whether the key was consumed.
// Keys that are not consumed belong to the search field.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Nothing but quitting and help while the spinner is up.
	if ctx.Loading() {
		return nil, true
	}

	switch {
	case key.Matches(msg, h.keys.Up):
		if ctx.ShowingCandidates() {
			return []types.Action{types.MoveHighlightAction{Delta: -1}}, true
		}
		return nil, true
	case key.Matches(msg, h.keys.Down):
		if ctx.ShowingCandidates() {
			return []types.Action{types.MoveHighlightAction{Delta: 1}}, true
		}
		return nil, true
	case key.Matches(msg, h.keys.Select):
		if ctx.ShowingCandidates() {
			return []types.Action{types.SelectCandidateAction{}}, true
		}
		return nil, true
	case key.Matches(msg, h.keys.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	case key.Matches(msg, h.keys.Details):
		if ctx.HasWeatherData() {
			return []types.Action{types.ShowDetailsAction{}}, true
		}
		return nil, true
	case key.Matches(msg, h.keys.Dismiss):
		if ctx.HasError() {
			return []types.Action{types.DismissErrorAction{}}, true
		}
		return nil, true
	}

	return nil, false
}
