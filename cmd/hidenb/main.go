package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"hidenb/internal/adapters/editor"
	"hidenb/internal/adapters/joplin"
	"hidenb/internal/adapters/memory"
	"hidenb/internal/adapters/tui"
	"hidenb/internal/adapters/tui/views"
	"hidenb/internal/config"
	"hidenb/internal/logger"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default is $XDG_CONFIG_HOME/hidenb/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Log to a file: the terminal belongs to the TUI.
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logFile, err := tea.LogToFile(filepath.Join(cfg.DataDir, "hidenb.log"), "")
	if err == nil {
		logger.SetOutput(logFile)
		defer logFile.Close()
	}

	selection := &tui.Selection{}
	redirects := tui.NewRedirects(joplin.NewOpener())

	svc, err := config.InitService(context.Background(), cfg, config.Host{
		Dialogs:   memory.NewDialogs(false),
		Workspace: selection,
		Runner:    redirects,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer svc.Close()

	app := tui.NewApp(views.Backend{
		Env:        svc.Env,
		Engine:     svc.Engine,
		Selection:  selection,
		Redirects:  redirects,
		UserChrome: svc.Chrome.UserChromePath(),
	}, editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
