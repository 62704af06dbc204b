package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testChar struct {
	Level int `json:"level"`
	Gold  int `json:"gold"`
}

func testDefaults() map[string]any {
	return map[string]any{
		KeyCharacter:  testChar{Level: 1, Gold: 50},
		KeyHabitCombo: 0,
		KeyTasks:      []string{},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "kv.db"), zap.NewNop(), testDefaults())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var c testChar
	require.NoError(t, s.Load(ctx, KeyCharacter, &c))
	require.Equal(t, testChar{Level: 1, Gold: 50}, c)

	// Unknown key without a default leaves the target at its zero value.
	var combo int
	require.NoError(t, s.Load(ctx, "no-such-key", &combo))
	require.Zero(t, combo)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyCharacter, testChar{Level: 7, Gold: 320}))

	var c testChar
	require.NoError(t, s.Load(ctx, KeyCharacter, &c))
	require.Equal(t, testChar{Level: 7, Gold: 320}, c)

	// Overwrite wins.
	require.NoError(t, s.Save(ctx, KeyCharacter, testChar{Level: 8, Gold: 10}))
	require.NoError(t, s.Load(ctx, KeyCharacter, &c))
	require.Equal(t, 8, c.Level)
}

func TestLoadCorruptValueFallsBackToDefault(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)`, KeyCharacter, `{"level": not json`)
	require.NoError(t, err)

	var c testChar
	require.NoError(t, s.Load(ctx, KeyCharacter, &c))
	require.Equal(t, testChar{Level: 1, Gold: 50}, c, "corrupt value must yield the default, not an error")
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	dst := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, src.Save(ctx, KeyCharacter, testChar{Level: 4, Gold: 99}))
	require.NoError(t, src.Save(ctx, KeyHabitCombo, 3))

	blob, err := src.ExportAll(ctx)
	require.NoError(t, err)
	require.True(t, json.Valid(blob))

	require.NoError(t, dst.ImportAll(ctx, blob))

	var c testChar
	require.NoError(t, dst.Load(ctx, KeyCharacter, &c))
	require.Equal(t, testChar{Level: 4, Gold: 99}, c)
	var combo int
	require.NoError(t, dst.Load(ctx, KeyHabitCombo, &combo))
	require.Equal(t, 3, combo)
}

func TestExportIncludesDefaultsForUnsetKeys(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	blob, err := s.ExportAll(ctx)
	require.NoError(t, err)

	var snapshot map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &snapshot))
	require.Contains(t, snapshot, KeyCharacter, "unset keys export their documented default")

	var c testChar
	require.NoError(t, json.Unmarshal(snapshot[KeyCharacter], &c))
	require.Equal(t, testChar{Level: 1, Gold: 50}, c)
}

func TestImportMalformedBlobChangesNothing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyCharacter, testChar{Level: 4, Gold: 99}))

	err := s.ImportAll(ctx, []byte(`{"character": {"level": 9`))
	require.Error(t, err)

	var c testChar
	require.NoError(t, s.Load(ctx, KeyCharacter, &c))
	require.Equal(t, testChar{Level: 4, Gold: 99}, c, "failed import must leave prior state intact")
}

func TestResetAllRevertsToDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyCharacter, testChar{Level: 9, Gold: 1}))
	require.NoError(t, s.Save(ctx, KeyHabitCombo, 12))

	require.NoError(t, s.ResetAll(ctx))

	var c testChar
	require.NoError(t, s.Load(ctx, KeyCharacter, &c))
	require.Equal(t, testChar{Level: 1, Gold: 50}, c)
	var combo int
	require.NoError(t, s.Load(ctx, KeyHabitCombo, &combo))
	require.Zero(t, combo)
}
