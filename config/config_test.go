package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sky-flux/sm2"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0600))
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
scheduler:
  easy_bonus: 1.5
  load_balance: false
simulator:
  cards: 250
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	want := sm2.DefaultSettings()
	want.EasyBonus = 1.5
	want.LoadBalance = false
	assert.Equal(t, want, cfg.Scheduler)
	assert.Equal(t, 250, cfg.Simulator.Cards)
	assert.Equal(t, 0, cfg.Simulator.Days)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "scheduler: [not, a, map")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidSettings(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "scheduler:\n  hard_penalty: 2\n")
	_, err := Load(dir)
	assert.ErrorIs(t, err, sm2.ErrInvalidSettings)
}

func TestLoadFile_UnreadablePath(t *testing.T) {
	// A directory where the file should be.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, FileName), 0o755))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := DefaultConfig()
	cfg.Scheduler.MaxFuzzingDays = 3
	cfg.Simulator.Days = 90

	require.NoError(t, Save(path, cfg))
	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scheduler.MinimumEase = 0
	err := Save(filepath.Join(t.TempDir(), FileName), cfg)
	assert.ErrorIs(t, err, sm2.ErrInvalidSettings)
}
