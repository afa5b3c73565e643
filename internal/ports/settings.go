package ports

import "context"

// ChangeHandler receives the keys written by a single settings update
type ChangeHandler func(ctx context.Context, keys []string)

// SettingsStore is the host's key-value settings storage.
// Values are JSON-shaped: strings, bools, float64 and []any.
type SettingsStore interface {
	// Register declares a key with its default. Existing values are kept.
	Register(ctx context.Context, key string, defaultValue any) error

	// Value returns the stored value, or nil when the key has never been set
	Value(ctx context.Context, key string) (any, error)

	SetValue(ctx context.Context, key string, value any) error

	// SetValues writes several keys atomically and notifies once
	SetValues(ctx context.Context, values map[string]any) error

	// OnChange subscribes to writes; handlers run after the write is durable
	OnChange(handler ChangeHandler)
}
