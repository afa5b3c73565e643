package application

import (
	"context"
	"slices"

	"hidenb/internal/domain"
	"hidenb/internal/logger"
)

// Engine connects the settings store and the selection notifications to the
// stylesheet and the selection guard.
type Engine struct {
	Settings   *Settings
	Stylesheet *Stylesheet
	Guard      *SelectionGuard

	queue EventQueue
}

// NewEngine creates a new Engine
func NewEngine(settings *Settings, stylesheet *Stylesheet, guard *SelectionGuard) *Engine {
	return &Engine{
		Settings:   settings,
		Stylesheet: stylesheet,
		Guard:      guard,
	}
}

// Activate registers default settings, subscribes to settings changes and
// writes the initial stylesheet.
func (e *Engine) Activate(ctx context.Context) error {
	if err := e.Settings.RegisterDefaults(ctx); err != nil {
		return err
	}
	e.Settings.Store().OnChange(e.SettingsChanged)
	return e.Stylesheet.Refresh(ctx)
}

// SettingsChanged handles a settings write. Exported so hosts that watch the
// store themselves can forward changes.
func (e *Engine) SettingsChanged(ctx context.Context, keys []string) {
	e.queue.Post(ctx, "settings changed", func(ctx context.Context) {
		if touchesStylesheet(keys) {
			if err := e.Stylesheet.Refresh(ctx); err != nil {
				logger.Error("Stylesheet refresh failed", err, map[string]interface{}{
					"keys": keys,
				})
			}
		}
		e.Guard.HandleSettingsChanged(ctx, keys)
	})
}

// SelectionChanged handles a selection notification from the host
func (e *Engine) SelectionChanged(ctx context.Context) {
	e.queue.Post(ctx, "selection changed", e.Guard.HandleSelectionChanged)
}

func touchesStylesheet(keys []string) bool {
	for _, k := range keys {
		if slices.Contains(domain.SettingKeys, k) {
			return true
		}
	}
	return false
}
