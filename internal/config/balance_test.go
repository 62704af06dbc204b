package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadBalanceMissingFileUsesDefaults(t *testing.T) {
	bal, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultBalance(), bal)
}

func TestLoadBalancePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"xp_growth_factor: 1.5\nweekly_main:\n  xp: 40\n  gold: 20\n"), 0o644))

	bal, err := LoadBalance(path)
	require.NoError(t, err)
	require.Equal(t, 1.5, bal.XPGrowthFactor)
	require.Equal(t, Reward{XP: 40, Gold: 20}, bal.WeeklyMain)
	// Untouched fields keep their defaults.
	require.Equal(t, 0.2, bal.ComboStep)
	require.Equal(t, Reward{XP: 15, Gold: 8}, bal.WeeklySide)
	require.Equal(t, 5, bal.DailyLogXP)
}

func TestLoadBalanceMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weekly_main: [not a map\n"), 0o644))

	bal, err := LoadBalance(path)
	require.Error(t, err)
	require.Equal(t, DefaultBalance(), bal, "malformed file falls back to defaults alongside the error")
}
