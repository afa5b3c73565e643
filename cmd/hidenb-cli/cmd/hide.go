package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hidenb/internal/application/commands"
)

var hideCmd = &cobra.Command{
	Use:   "hide <folder-id>",
	Short: "Hide a notebook and its sub-notebooks",
	Long: `Hide a notebook from the sidebar. Every sub-notebook is hidden with it.

The last visible notebook can't be hidden.

Examples:
  hidenb-cli hide 0f3b2c1d4e5f60718293a4b5c6d7e8f9`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewHideNotebookCommand(GetEnv(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var unhideCmd = &cobra.Command{
	Use:   "unhide <folder-id>",
	Short: "Show a hidden notebook and its sub-notebooks again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewUnhideNotebookCommand(GetEnv(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var showHiddenCmd = &cobra.Command{
	Use:   "show-hidden",
	Short: "Unhide every hidden notebook",
	Long: `Unhide every hidden notebook after confirmation. The Trash stays
hidden while toggle-trash has it turned off.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewShowHiddenNotebooksCommand(GetEnv()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hideCmd)
	rootCmd.AddCommand(unhideCmd)
	rootCmd.AddCommand(showHiddenCmd)
}
