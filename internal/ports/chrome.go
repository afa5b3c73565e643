package ports

import "context"

// Chrome delivers generated stylesheets to the host's presentation layer
type Chrome interface {
	WriteFile(ctx context.Context, path, text string) error

	// LoadStylesheet makes the host apply the stylesheet at path
	LoadStylesheet(ctx context.Context, path string) error
}
