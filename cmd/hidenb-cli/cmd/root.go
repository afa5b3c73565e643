package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hidenb/internal/adapters/dialogs"
	"hidenb/internal/adapters/memory"
	"hidenb/internal/application"
	"hidenb/internal/application/commands"
	"hidenb/internal/config"
)

var (
	cfgFile   string
	folderID  string
	assumeYes bool

	svc       *config.Service
	workspace = &memory.Workspace{}
)

var rootCmd = &cobra.Command{
	Use:   "hidenb-cli",
	Short: "Hide notebooks from the Joplin sidebar",
	Long: `hidenb-cli keeps a set of hidden Joplin notebooks and regenerates the
stylesheet that removes them from the desktop app's sidebar.

Hiding a notebook also hides its sub-notebooks. The "All notes" entry and
the Trash can be toggled separately. Notebooks are read from the Joplin
Data API or directly from a profile directory, see --config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		term := dialogs.NewTerminal()
		term.AssumeYes = assumeYes

		svc, err = config.InitService(cmd.Context(), cfg, config.Host{
			Dialogs:   term,
			Workspace: workspace,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		return svc.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// The notice has already been shown.
		if !errors.Is(err, application.ErrLastNotebook) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/hidenb/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmations")
}

// GetEnv returns the initialized command environment
func GetEnv() commands.Env {
	return svc.Env
}
