package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write_ini(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aidynedit.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(write_ini(t, "rom = roms/Aidyn Chronicles.z64\nbackup = false\nlog_level = debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "roms/Aidyn Chronicles.z64", cfg.ROM)
	assert.False(t, cfg.Backup)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Backup)

	cfg, err = Load(write_ini(t, "rom = x.z64\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Backup, "backup defaults on when the key is absent")
}

func TestLoadBadBool(t *testing.T) {
	_, err := Load(write_ini(t, "backup = perhaps\n"))
	assert.Error(t, err)
}

func TestPick(t *testing.T) {
	assert.Equal(t, "flag", Pick("flag", "ini", "default"))
	assert.Equal(t, "ini", Pick("", "ini", "default"))
	assert.Equal(t, "default", Pick("", "", "default"))
}
