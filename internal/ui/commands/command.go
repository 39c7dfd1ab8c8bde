package commands

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skyglance/internal/eventbus"
	"skyglance/internal/flow"
	"skyglance/internal/weather"
)

// Command represents an executable effect
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx    context.Context
	Client weather.Client
	Bus    eventbus.EventBus
}

// DebounceCommand fires a DebounceElapsed event once its delay has passed
type DebounceCommand struct {
	effect flow.ScheduleDebounce
}

// NewDebounceCommand creates a new debounce command
func NewDebounceCommand(effect flow.ScheduleDebounce) *DebounceCommand {
	return &DebounceCommand{effect: effect}
}

// Execute schedules the timer. Superseded timers still fire; the reducer
// ignores them by token.
func (c *DebounceCommand) Execute() tea.Cmd {
	token, text := c.effect.Token, c.effect.Text
	return tea.Tick(c.effect.Delay, func(time.Time) tea.Msg {
		return flow.DebounceElapsed{Token: token, Text: text}
	})
}

// SearchCommand runs a location search
type SearchCommand struct {
	ctx    *CommandContext
	effect flow.SearchLocations
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, effect flow.SearchLocations) *SearchCommand {
	return &SearchCommand{ctx: ctx, effect: effect}
}

// Execute performs the search off the update loop
func (c *SearchCommand) Execute() tea.Cmd {
	cc, effect := c.ctx, c.effect
	return func() tea.Msg {
		locations, err := cc.Client.SearchLocations(cc.Ctx, effect.Query)
		if err != nil {
			log.Printf("Search #%d for %q failed: %v", effect.Seq, effect.Query, err)
			return flow.SearchFailed{Seq: effect.Seq, Err: err}
		}
		return flow.SearchSucceeded{Seq: effect.Seq, Locations: locations}
	}
}

// ForecastCommand fetches a forecast
type ForecastCommand struct {
	ctx    *CommandContext
	effect flow.FetchForecast
}

// NewForecastCommand creates a new forecast command
func NewForecastCommand(ctx *CommandContext, effect flow.FetchForecast) *ForecastCommand {
	return &ForecastCommand{ctx: ctx, effect: effect}
}

// Execute fetches the forecast off the update loop
func (c *ForecastCommand) Execute() tea.Cmd {
	cc, effect := c.ctx, c.effect
	return func() tea.Msg {
		state, err := cc.Client.GetForecast(cc.Ctx, effect.City, effect.Days)
		if err != nil {
			log.Printf("Forecast #%d for %q failed: %v", effect.Seq, effect.City, err)
			return flow.ForecastFailed{Seq: effect.Seq, Err: err}
		}
		return flow.ForecastSucceeded{Seq: effect.Seq, State: state}
	}
}

// NotifyCommand publishes a domain event on the bus
type NotifyCommand struct {
	ctx    *CommandContext
	effect flow.Notify
}

// NewNotifyCommand creates a new notify command
func NewNotifyCommand(ctx *CommandContext, effect flow.Notify) *NotifyCommand {
	return &NotifyCommand{ctx: ctx, effect: effect}
}

// Execute publishes immediately; there is nothing to feed back into the update loop
func (c *NotifyCommand) Execute() tea.Cmd {
	if c.ctx.Bus != nil && c.effect.Event != nil {
		c.ctx.Bus.Publish(c.effect.Event)
	}
	return nil
}
