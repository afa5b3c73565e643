package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hidenb/internal/application/commands"
)

var hiddenOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notebooks with their hidden state",
	Long: `List every notebook as a tree. Hidden notebooks are marked with [x].

Examples:
  hidenb-cli list
  hidenb-cli list --hidden`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewListNotebooksCommand(GetEnv()).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, row := range result.Rows {
			if hiddenOnly && !row.Hidden {
				continue
			}
			mark := " "
			if row.Hidden {
				mark = "x"
			}
			fmt.Printf("[%s] %s%s  %s\n", mark, strings.Repeat("  ", row.Depth), row.Title, row.ID)
		}
		fmt.Printf("\nAll notes: %s\nTrash: %s\n", shown(result.Flags.ShowAllNotes), shown(result.Flags.ShowTrash))
		return nil
	},
}

func shown(v bool) string {
	if v {
		return "shown"
	}
	return "hidden"
}

func init() {
	listCmd.Flags().BoolVar(&hiddenOnly, "hidden", false, "only list hidden notebooks")
	rootCmd.AddCommand(listCmd)
}
