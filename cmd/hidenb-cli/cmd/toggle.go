package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hidenb/internal/application/commands"
)

var toggleAllNotesCmd = &cobra.Command{
	Use:   "toggle-all-notes",
	Short: `Show or hide the "All notes" sidebar entry`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewToggleAllNotesCommand(GetEnv()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var toggleTrashCmd = &cobra.Command{
	Use:   "toggle-trash",
	Short: "Show or hide the Trash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewToggleTrashCommand(GetEnv()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleAllNotesCmd)
	rootCmd.AddCommand(toggleTrashCmd)
}
