package types

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Loading() bool
	ShowingCandidates() bool
	HasWeatherData() bool
	HasError() bool
}

// MoveHighlightAction moves the candidate highlight
type MoveHighlightAction struct {
	Delta int
}

func (MoveHighlightAction) Type() string { return "move_highlight" }

// SelectCandidateAction selects the highlighted candidate
type SelectCandidateAction struct{}

func (SelectCandidateAction) Type() string { return "select_candidate" }

// RefreshAction re-fetches the forecast on screen
type RefreshAction struct{}

func (RefreshAction) Type() string { return "refresh" }

// ShowDetailsAction opens the full forecast in the pager
type ShowDetailsAction struct{}

func (ShowDetailsAction) Type() string { return "show_details" }

// DismissErrorAction clears the error line
type DismissErrorAction struct{}

func (DismissErrorAction) Type() string { return "dismiss_error" }

// ToggleHelpAction switches between short and full help
type ToggleHelpAction struct{}

func (ToggleHelpAction) Type() string { return "toggle_help" }

// QuitAction quits the application
type QuitAction struct{}

func (QuitAction) Type() string { return "quit" }
