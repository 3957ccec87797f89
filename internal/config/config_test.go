package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noor-latif/hourdash/internal/config"
	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "/tmp/x.db")
	cfg := config.Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "HourDash", cfg.Title)
}

func TestLoadSeedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := `
totalHours: 36
pace:
  mode: time_aware
categories:
  - label: Writing
    targetHours: 20
    includeWeekend: true
    color: "#c0ffee"
    groupIds: [1, 2]
  - id: run
    label: Running
    targetHours: 4.5
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	raw, err := config.LoadSeed(path)
	require.NoError(t, err)

	cfg := targets.Normalize(raw)
	assert.Equal(t, 36.0, cfg.TotalHours)
	assert.Equal(t, models.PaceTimeAware, cfg.Pace.Mode)
	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, targets.CategoryID("Writing"), cfg.Categories[0].ID)
	assert.Equal(t, "#C0FFEE", cfg.Categories[0].Color)
	assert.Equal(t, []int{1, 2}, cfg.Categories[0].GroupIDs)
	assert.True(t, cfg.Categories[0].IncludeWeekend)
	assert.Equal(t, "run", cfg.Categories[1].ID)
	assert.Equal(t, 4.5, cfg.Categories[1].TargetHours)
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := config.LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o644))
	_, err = config.LoadSeed(path)
	assert.Error(t, err)
}
