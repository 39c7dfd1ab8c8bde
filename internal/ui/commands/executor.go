package commands

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"skyglance/internal/eventbus"
	"skyglance/internal/flow"
	"skyglance/internal/weather"
)

// Executor turns reducer effects into Bubble Tea commands
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. ctx bounds every API call
// started by the executor.
func NewExecutor(ctx context.Context, client weather.Client, bus eventbus.EventBus) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:    ctx,
			Client: client,
			Bus:    bus,
		},
	}
}

// Execute runs every effect and batches the resulting commands
func (e *Executor) Execute(effects []flow.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, effect := range effects {
		cmd := e.command(effect)
		if cmd == nil {
			continue
		}
		if c := cmd.Execute(); c != nil {
			cmds = append(cmds, c)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (e *Executor) command(effect flow.Effect) Command {
	switch eff := effect.(type) {
	case flow.ScheduleDebounce:
		return NewDebounceCommand(eff)
	case flow.SearchLocations:
		return NewSearchCommand(e.ctx, eff)
	case flow.FetchForecast:
		return NewForecastCommand(e.ctx, eff)
	case flow.Notify:
		return NewNotifyCommand(e.ctx, eff)
	default:
		log.Printf("Executor: unknown effect %T", effect)
		return nil
	}
}
