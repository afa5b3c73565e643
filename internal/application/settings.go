package application

import (
	"context"
	"fmt"

	"hidenb/internal/domain"
	"hidenb/internal/logger"
	"hidenb/internal/ports"
)

// Settings is the authoritative hidden set and display flags, read through
// parse-or-default so malformed stored values never fail a caller.
type Settings struct {
	store ports.SettingsStore
}

// NewSettings wraps a host settings store
func NewSettings(store ports.SettingsStore) *Settings {
	return &Settings{store: store}
}

// Store returns the underlying settings store
func (s *Settings) Store() ports.SettingsStore {
	return s.store
}

// RegisterDefaults declares the three settings with an empty set and both
// entries shown. Values already stored are kept.
func (s *Settings) RegisterDefaults(ctx context.Context) error {
	defaults := []struct {
		key   string
		value any
	}{
		{SettingHiddenNotebookIDs, []any{}},
		{SettingShowAllNotes, true},
		{SettingShowTrash, true},
	}
	for _, d := range defaults {
		if err := s.store.Register(ctx, d.key, d.value); err != nil {
			return fmt.Errorf("register %s: %w", d.key, err)
		}
	}
	return nil
}

// Hidden returns the hidden set; a missing or malformed value yields an empty set
func (s *Settings) Hidden(ctx context.Context) (domain.HiddenSet, error) {
	raw, err := s.store.Value(ctx, SettingHiddenNotebookIDs)
	if err != nil {
		return domain.HiddenSet{}, fmt.Errorf("read %s: %w", SettingHiddenNotebookIDs, err)
	}
	ids, ok := ParseIDList(raw)
	if !ok {
		logger.Warn("Ignoring malformed setting", map[string]interface{}{
			"key":   SettingHiddenNotebookIDs,
			"value": fmt.Sprintf("%v", raw),
		})
	}
	return domain.NewHiddenSet(ids...), nil
}

// SetHidden persists the hidden set
func (s *Settings) SetHidden(ctx context.Context, hidden domain.HiddenSet) error {
	if err := s.store.SetValue(ctx, SettingHiddenNotebookIDs, idsToValue(hidden)); err != nil {
		return fmt.Errorf("write %s: %w", SettingHiddenNotebookIDs, err)
	}
	return nil
}

// Flags returns the display flags; malformed values fall back to true
func (s *Settings) Flags(ctx context.Context) (domain.DisplayFlags, error) {
	flags := domain.DefaultDisplayFlags()
	var err error
	if flags.ShowAllNotes, err = s.flag(ctx, SettingShowAllNotes); err != nil {
		return flags, err
	}
	if flags.ShowTrash, err = s.flag(ctx, SettingShowTrash); err != nil {
		return flags, err
	}
	return flags, nil
}

func (s *Settings) flag(ctx context.Context, key string) (bool, error) {
	raw, err := s.store.Value(ctx, key)
	if err != nil {
		return true, fmt.Errorf("read %s: %w", key, err)
	}
	value, ok := ParseBool(raw, true)
	if !ok {
		logger.Warn("Ignoring malformed setting", map[string]interface{}{
			"key":   key,
			"value": fmt.Sprintf("%v", raw),
		})
	}
	return value, nil
}

// SetFlag persists one display flag
func (s *Settings) SetFlag(ctx context.Context, name string, value bool) error {
	if err := ValidateFlag(name); err != nil {
		return err
	}
	if err := s.store.SetValue(ctx, name, value); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Save writes the hidden set and both flags in one update
func (s *Settings) Save(ctx context.Context, hidden domain.HiddenSet, flags domain.DisplayFlags) error {
	err := s.store.SetValues(ctx, map[string]any{
		SettingHiddenNotebookIDs: idsToValue(hidden),
		SettingShowAllNotes:      flags.ShowAllNotes,
		SettingShowTrash:         flags.ShowTrash,
	})
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func idsToValue(hidden domain.HiddenSet) []any {
	ids := hidden.IDs()
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

// ParseIDList reads a stored id list. ok is false when raw is present but not
// a list of strings; nil (never set) is a valid empty list.
func ParseIDList(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, true
	case []string:
		return v, true
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			id, isString := item.(string)
			if !isString {
				return nil, false
			}
			ids = append(ids, id)
		}
		return ids, true
	default:
		return nil, false
	}
}

// ParseBool reads a stored boolean, returning def when raw is missing or not a bool
func ParseBool(raw any, def bool) (bool, bool) {
	switch v := raw.(type) {
	case nil:
		return def, true
	case bool:
		return v, true
	default:
		return def, false
	}
}
