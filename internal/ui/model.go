package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skyglance/internal/config"
	"skyglance/internal/eventbus"
	"skyglance/internal/flow"
	"skyglance/internal/ui/commands"
	"skyglance/internal/ui/input"
	inputtypes "skyglance/internal/ui/input/types"
	"skyglance/internal/ui/views"
	"skyglance/internal/weather"
)

// Model is the Bubble Tea model of the weather screen. All forecast state
// lives in vm and only changes through flow.Reduce.
type Model struct {
	vm          flow.ViewModel
	defaultCity string

	width    int
	height   int
	showHelp bool

	textInput    textinput.Model
	spinner      spinner.Model
	help         help.Model
	inputHandler *input.Handler
	renderer     *views.Renderer
	cmdExecutor  *commands.Executor
}

// NewModel creates a new UI model. ctx bounds all API calls made by the model.
func NewModel(ctx context.Context, cfg *config.Config, client weather.Client, bus eventbus.EventBus) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a city..."
	ti.Prompt = "⌕ "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		vm: flow.New(flow.Options{
			Days:     cfg.Forecast.Days,
			Debounce: cfg.Forecast.Debounce.Duration,
		}),
		defaultCity:  cfg.Forecast.DefaultCity,
		showHelp:     cfg.UI.ShowHelp,
		textInput:    ti,
		spinner:      sp,
		help:         help.New(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		cmdExecutor:  commands.NewExecutor(ctx, client, bus),
	}
}

// Init fetches the default city's forecast
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.dispatch(flow.Initialize{City: m.defaultCity}),
	)
}

// ViewModel returns the current flow state
func (m *Model) ViewModel() flow.ViewModel {
	return m.vm
}

// dispatch feeds ev through the reducer and runs the resulting effects
func (m *Model) dispatch(ev flow.Event) tea.Cmd {
	var effects []flow.Effect
	m.vm, effects = flow.Reduce(m.vm, ev)
	return m.cmdExecutor.Execute(effects)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textInput.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case flow.Event:
		return m, m.dispatch(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Forecast pager failed: %v", msg.err)
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
}

// handleKey routes a key press either to an action or to the search field
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions, consumed := m.inputHandler.HandleKey(msg, inputContext{vm: m.vm})
	if consumed {
		cmds := []tea.Cmd{}
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if after := m.textInput.Value(); after != before {
		return m, tea.Batch(cmd, m.dispatch(flow.TextChanged{Text: after}))
	}
	return m, cmd
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.showHelp = true
		return nil

	case inputtypes.MoveHighlightAction:
		return m.dispatch(flow.MoveHighlight{Delta: a.Delta})

	case inputtypes.SelectCandidateAction:
		candidate, ok := m.vm.HighlightedCandidate()
		if !ok {
			return nil
		}
		return m.dispatch(flow.LocationSelected{Candidate: candidate})

	case inputtypes.RefreshAction:
		return m.dispatch(flow.Refresh{})

	case inputtypes.DismissErrorAction:
		return m.dispatch(flow.DismissError{})

	case inputtypes.ShowDetailsAction:
		return showInPager(views.ForecastReport(m.vm.Weather()))

	default:
		log.Printf("Unhandled action %s", action.Type())
		return nil
	}
}

// View renders the UI
func (m *Model) View() string {
	state := views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Loading:     m.vm.Loading(),
		Spinner:     m.spinner.View(),
		SearchInput: m.textInput.View(),
		Candidates:  m.vm.Locations(),
		Highlight:   m.vm.Highlight(),
		Weather:     m.vm.Weather(),
	}
	if err := m.vm.Err(); err != nil {
		state.Error = err.Error()
	}
	if m.showHelp {
		state.Help = m.help.View(m.inputHandler.Keys())
	}
	return m.renderer.Render(state)
}

// inputContext exposes the flow state to the input handler
type inputContext struct {
	vm flow.ViewModel
}

func (c inputContext) Loading() bool           { return c.vm.Loading() }
func (c inputContext) ShowingCandidates() bool { return c.vm.ShowingCandidates() }
func (c inputContext) HasWeatherData() bool    { return c.vm.HasWeatherData() }
func (c inputContext) HasError() bool          { return c.vm.Err() != nil }
