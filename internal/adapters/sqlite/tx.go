package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
)

// settingsTx groups writes to the settings table
type settingsTx struct {
	tx *sql.Tx
}

func (s *SettingsStore) beginTx(ctx context.Context) (*settingsTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &settingsTx{tx: tx}, nil
}

// put inserts or replaces a JSON-encoded value
func (t *settingsTx) put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = t.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings (key, value)
		VALUES (?, ?)
	`, key, string(raw))
	return err
}

func (t *settingsTx) commit() error {
	return t.tx.Commit()
}

func (t *settingsTx) rollback() {
	_ = t.tx.Rollback()
}
