package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"hidenb/internal/application/commands"
)

var copyCSS bool

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the generated sidebar stylesheet",
	Long: `Regenerate the sidebar stylesheet, link it into userchrome.css and print it.

The desktop app reads userchrome.css on startup, so restart it after the
first run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewStylesheetCommand(GetEnv(), true).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if copyCSS {
			if err := clipboard.WriteAll(result.CSS); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Printf("Copied %d bytes from %s\n", len(result.CSS), result.Path)
			return nil
		}

		fmt.Printf("/* %s */\n%s", result.Path, result.CSS)
		return nil
	},
}

func init() {
	cssCmd.Flags().BoolVar(&copyCSS, "copy", false, "copy the stylesheet to the clipboard instead of printing it")
	rootCmd.AddCommand(cssCmd)
}
