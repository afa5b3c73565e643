package ports

import "context"

// Dialogs shows user-facing prompts
type Dialogs interface {
	// Confirm asks an OK/Cancel question and reports whether the user chose OK
	Confirm(ctx context.Context, message string) (bool, error)

	// Notify shows a blocking notice
	Notify(ctx context.Context, message string) error
}
