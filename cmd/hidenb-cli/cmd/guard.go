package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hidenb/internal/application"
	"hidenb/internal/domain"
)

var guardCmd = &cobra.Command{
	Use:   "guard --folder <folder-id>",
	Short: "Move the selection off a hidden notebook",
	Long: `Check the notebook given with --folder the way the sidebar does when it
is selected. When it is hidden, or it is the Trash, the first note outside
the hidden notebooks is opened in the desktop app instead.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if folderID == "" {
			return fmt.Errorf("--folder is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := resolveFolder(cmd, folderID)
		if err != nil {
			return err
		}
		workspace.Select(folder)

		redirect, err := svc.Engine.Guard.Enforce(cmd.Context(), folder)
		if err != nil {
			return err
		}

		switch {
		case redirect == nil:
			fmt.Printf("Notebook %s is visible\n", folderID)
		case redirect.NoteID == "":
			fmt.Printf("Notebook %s is hidden and no visible note exists\n", folderID)
		default:
			fmt.Printf("Notebook %s is hidden, opened note %s\n", folderID, redirect.NoteID)
		}
		return nil
	},
}

func init() {
	guardCmd.Flags().StringVar(&folderID, "folder", "", "ID of the selected notebook")
	rootCmd.AddCommand(guardCmd)
}

// resolveFolder looks up the parent of id so sub-notebooks of hidden
// notebooks are recognised
func resolveFolder(cmd *cobra.Command, id string) (*domain.Folder, error) {
	if id == domain.TrashFolderID {
		return &domain.Folder{ID: id, Title: "Trash"}, nil
	}
	folders, err := GetEnv().Data.ListFolders(cmd.Context())
	if err != nil {
		return nil, err
	}
	for _, f := range folders {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("notebook %s: %w", id, application.ErrNotFound)
}
