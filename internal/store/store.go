// Package store is the persistence collaborator: one JSON document per
// well-known key, kept in a single SQLite table. Nothing in here knows any
// game rules; it loads, saves, exports, imports and resets.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Persisted keys. Every entity is independently loadable and savable;
// there is no cross-key transaction on the normal save path.
const (
	KeySettings        = "settings"
	KeyCharacter       = "character"
	KeyDashboard       = "dashboard"
	KeyTasks           = "tasks"
	KeyBacklog         = "backlog"
	KeyWeeklyPlan      = "weeklyPlan"
	KeyHabits          = "habits"
	KeyHabitCombo      = "habitCombo"
	KeyTransitionCards = "transitionCards"
	KeyMedications     = "medications"
	KeyLogs            = "logs"
	KeyAdventureLog    = "adventureLog"
	KeyShopItems       = "shopItems"
)

// KnownKeys lists every persisted key in export order.
func KnownKeys() []string {
	return []string{
		KeySettings, KeyCharacter, KeyDashboard, KeyTasks, KeyBacklog,
		KeyWeeklyPlan, KeyHabits, KeyHabitCombo, KeyTransitionCards,
		KeyMedications, KeyLogs, KeyAdventureLog, KeyShopItems,
	}
}

type Store struct {
	db       *sql.DB
	log      *zap.Logger
	defaults map[string]any
}

// DefaultDBPath returns ~/.wanderquest.db, overridable via WQ_DB.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("WQ_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".wanderquest.db"), nil
}

// Open opens (creating if missing) the SQLite database at path and ensures
// the kv table exists. defaults supplies the documented fallback value per
// key, used whenever a stored value is absent or corrupt.
func Open(ctx context.Context, path string, logger *zap.Logger, defaults map[string]any) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate kv: %w", err)
	}
	return &Store{db: db, log: logger, defaults: defaults}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Load reads the value for key into v. A missing or corrupt value is
// silently replaced by the documented default (and logged); it is never a
// blocking error for the caller.
func (s *Store) Load(ctx context.Context, key string, v any) error {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
		return s.loadDefault(key, v)
	case err != nil:
		return fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.log.Warn("corrupt persisted value, using default",
			zap.String("key", key), zap.Error(err))
		return s.loadDefault(key, v)
	}
	return nil
}

func (s *Store) loadDefault(key string, v any) error {
	def, ok := s.defaults[key]
	if !ok {
		// Unknown key: leave v at its zero value.
		return nil
	}
	raw, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal default %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("apply default %s: %w", key, err)
	}
	return nil
}

// Save persists v under key, overwriting any prior value.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// ExportAll serializes every known key's current value (stored or default)
// into one human-readable JSON blob, losslessly round-trippable through
// ImportAll.
func (s *Store) ExportAll(ctx context.Context) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.defaults))
	for _, key := range KnownKeys() {
		var raw string
		err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
		switch {
		case err == sql.ErrNoRows:
			def, ok := s.defaults[key]
			if !ok {
				continue
			}
			b, mErr := json.Marshal(def)
			if mErr != nil {
				return nil, fmt.Errorf("export %s: %w", key, mErr)
			}
			out[key] = b
		case err != nil:
			return nil, fmt.Errorf("export %s: %w", key, err)
		default:
			if !json.Valid([]byte(raw)) {
				s.log.Warn("corrupt value skipped during export", zap.String("key", key))
				continue
			}
			out[key] = json.RawMessage(raw)
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ImportAll replaces all keys' values from a previously exported snapshot.
// The blob is parsed in full before anything is written and all writes run
// in one transaction, so a malformed snapshot makes no changes at all.
func (s *Store) ImportAll(ctx context.Context, blob []byte) error {
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		s.log.Warn("malformed import snapshot", zap.Error(err))
		return fmt.Errorf("parse snapshot: %w", err)
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO kv (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
				key, string(snapshot[key])); err != nil {
				return fmt.Errorf("import %s: %w", key, err)
			}
		}
		return nil
	})
}

// ResetAll removes every persisted key, reverting all entities to their
// defaults on next load.
func (s *Store) ResetAll(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv`); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
