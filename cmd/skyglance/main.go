package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"skyglance/internal/config"
	"skyglance/internal/eventbus"
	"skyglance/internal/ui"
	"skyglance/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup happens before main exits
func run() error {
	configPath := flag.String("config", "", "path to config file (default: user config dir)")
	city := flag.String("city", "", "city to show on startup (overrides config)")
	logPath := flag.String("log", "skyglance.log", "log file path")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *city != "" {
		cfg.Forecast.DefaultCity = *city
	}

	client := weather.NewRateLimitedClient(
		weather.NewHTTPClient(cfg.API.BaseURL, cfg.API.APIKey, cfg.API.Timeout.Duration),
		cfg.API.RequestsPerSecond,
		cfg.API.Burst,
	)

	bus := eventbus.New()
	defer bus.Close()
	subscribeActivityLog(bus)

	p := tea.NewProgram(ui.NewModel(ctx, cfg, client, bus), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadConfig reads the config file, writing defaults on first run. The
// environment is applied after saving so secrets never reach the file.
func loadConfig(path string) (*config.Config, error) {
	configSvc := config.NewConfigService()
	if path != "" {
		configSvc = config.NewConfigServiceAt(path)
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	} else if _, statErr := os.Stat(configSvc.Path()); os.IsNotExist(statErr) {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Could not write default config to %s: %v", configSvc.Path(), err)
		}
	}

	if err := config.ApplyEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// subscribeActivityLog records request activity in the log file
func subscribeActivityLog(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSearchIssued, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchIssuedEvent)
		log.Printf("search #%d issued for %q", ev.Seq, ev.Query)
	})
	bus.Subscribe(eventbus.EventSearchApplied, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchAppliedEvent)
		log.Printf("search #%d applied with %d candidates", ev.Seq, ev.Count)
	})
	bus.Subscribe(eventbus.EventForecastIssued, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ForecastIssuedEvent)
		log.Printf("forecast #%d issued for %q (%d days)", ev.Seq, ev.City, ev.Days)
	})
	bus.Subscribe(eventbus.EventForecastApplied, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ForecastAppliedEvent)
		log.Printf("forecast #%d applied for %s", ev.Seq, ev.Location)
	})
	bus.Subscribe(eventbus.EventResponseDiscarded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ResponseDiscardedEvent)
		log.Printf("discarded stale %s response #%d (latest #%d)", ev.Channel, ev.Seq, ev.Latest)
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ErrorEvent)
		log.Printf("%s error: %s", ev.Channel, ev.Message)
	})
}
