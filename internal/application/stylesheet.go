package application

import (
	"context"
	"fmt"
	"path/filepath"

	"hidenb/internal/domain"
	"hidenb/internal/logger"
	"hidenb/internal/ports"
)

// StylesheetFileName is the generated file inside the data directory
const StylesheetFileName = "generated.css"

// Stylesheet regenerates the sidebar CSS from the current settings and hands
// it to the host.
type Stylesheet struct {
	settings *Settings
	chrome   ports.Chrome
	path     string
}

// NewStylesheet writes to StylesheetFileName inside dataDir
func NewStylesheet(settings *Settings, chrome ports.Chrome, dataDir string) *Stylesheet {
	return &Stylesheet{
		settings: settings,
		chrome:   chrome,
		path:     filepath.Join(dataDir, StylesheetFileName),
	}
}

// Path returns where the stylesheet is written
func (s *Stylesheet) Path() string {
	return s.path
}

// Render returns the stylesheet for the stored settings without writing it
func (s *Stylesheet) Render(ctx context.Context) (string, error) {
	hidden, err := s.settings.Hidden(ctx)
	if err != nil {
		return "", err
	}
	flags, err := s.settings.Flags(ctx)
	if err != nil {
		return "", err
	}
	return domain.GenerateStylesheet(hidden, flags), nil
}

// Refresh regenerates the stylesheet, writes it and asks the host to load it
func (s *Stylesheet) Refresh(ctx context.Context) error {
	css, err := s.Render(ctx)
	if err != nil {
		return fmt.Errorf("render stylesheet: %w", err)
	}
	if err := s.chrome.WriteFile(ctx, s.path, css); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	if err := s.chrome.LoadStylesheet(ctx, s.path); err != nil {
		return fmt.Errorf("load stylesheet: %w", err)
	}

	logger.Debug("Stylesheet refreshed", map[string]interface{}{
		"path":  s.path,
		"bytes": len(css),
	})
	return nil
}
