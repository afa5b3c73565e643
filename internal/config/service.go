package config

import (
	"context"
	"errors"
	"fmt"

	"hidenb/internal/adapters/chrome"
	"hidenb/internal/adapters/joplin"
	"hidenb/internal/adapters/sqlite"
	"hidenb/internal/application"
	"hidenb/internal/application/commands"
	"hidenb/internal/logger"
	"hidenb/internal/ports"
)

// Host is what the running surface supplies: how it asks the user, what it
// has selected and, optionally, how host commands are run.
type Host struct {
	Dialogs   ports.Dialogs
	Workspace ports.Workspace

	// Runner defaults to the joplin:// opener
	Runner ports.CommandRunner
}

// Service is a fully wired engine plus the command environment
type Service struct {
	Config *Config
	Env    commands.Env
	Engine *application.Engine
	Chrome *chrome.Files

	closers []func() error
}

// InitService opens the stores named by cfg and activates the engine
func InitService(ctx context.Context, cfg *Config, host Host) (*Service, error) {
	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, err
	}

	svc := &Service{Config: cfg}

	store := sqlite.NewSettingsStore()
	if err := store.Open(cfg.DataDir); err != nil {
		return nil, err
	}
	svc.closers = append(svc.closers, store.Close)

	var data ports.DataSource
	switch cfg.Source {
	case SourceProfile:
		profile, err := sqlite.OpenProfile(cfg.Joplin.ProfileDir)
		if err != nil {
			svc.Close()
			return nil, err
		}
		svc.closers = append(svc.closers, profile.Close)
		data = profile
	default:
		data = joplin.NewClient(cfg.Joplin.APIURL, cfg.Joplin.Token)
	}

	settings := application.NewSettings(store)
	svc.Chrome = chrome.NewFiles(cfg.Joplin.ProfileDir)
	stylesheet := application.NewStylesheet(settings, svc.Chrome, cfg.DataDir)
	runner := host.Runner
	if runner == nil {
		runner = joplin.NewOpener()
	}
	guard := application.NewSelectionGuard(settings, data, host.Workspace, runner)

	svc.Engine = application.NewEngine(settings, stylesheet, guard)
	svc.Env = commands.Env{
		Settings:   settings,
		Data:       data,
		Dialogs:    host.Dialogs,
		Stylesheet: stylesheet,
	}

	if err := svc.Engine.Activate(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("failed to activate: %w", err)
	}

	logger.Debug("Service ready", map[string]interface{}{
		"data_dir": cfg.DataDir,
		"source":   cfg.Source,
	})
	return svc, nil
}

// Close releases the stores in reverse order
func (s *Service) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
