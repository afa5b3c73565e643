package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"hidenb/internal/ports"
)

// SettingsStore implements ports.SettingsStore in memory
type SettingsStore struct {
	mu       sync.Mutex
	values   map[string]any
	handlers []ports.ChangeHandler

	// Writes counts SetValue/SetValues calls
	Writes int
}

// Ensure SettingsStore implements ports.SettingsStore
var _ ports.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a store preloaded with values
func NewSettingsStore(values map[string]any) *SettingsStore {
	s := &SettingsStore{values: make(map[string]any)}
	maps.Copy(s.values, values)
	return s
}

// Register sets the default when the key has no value yet
func (s *SettingsStore) Register(_ context.Context, key string, defaultValue any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		s.values[key] = cloneValue(defaultValue)
	}
	return nil
}

// Value returns the stored value or nil
func (s *SettingsStore) Value(_ context.Context, key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneValue(s.values[key]), nil
}

// SetValue stores one key and notifies subscribers
func (s *SettingsStore) SetValue(ctx context.Context, key string, value any) error {
	return s.SetValues(ctx, map[string]any{key: value})
}

// SetValues stores several keys and notifies subscribers once
func (s *SettingsStore) SetValues(ctx context.Context, values map[string]any) error {
	s.mu.Lock()
	for k, v := range values {
		s.values[k] = cloneValue(v)
	}
	s.Writes++
	handlers := slices.Clone(s.handlers)
	s.mu.Unlock()

	keys := slices.Sorted(maps.Keys(values))
	for _, h := range handlers {
		h(ctx, keys)
	}
	return nil
}

// OnChange subscribes to writes
func (s *SettingsStore) OnChange(handler ports.ChangeHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		return slices.Clone(t)
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}
