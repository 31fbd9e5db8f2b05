package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data/memberpress.csv", cfg.Input.MembersPath)
	assert.Equal(t, "data/genius-referrals.csv", cfg.Input.AdvocatesPath)
	assert.Equal(t, "utf-8", cfg.Input.Encoding)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "missing-memberpress-users.csv", cfg.Output.Filename)
	assert.Equal(t, filepath.Join("output", "missing-memberpress-users.csv"), cfg.Output.Path())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("INPUT_MEMBERS_PATH", "/exports/members.csv")
	t.Setenv("INPUT_ENCODING", "latin-1")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/exports/members.csv", cfg.Input.MembersPath)
	assert.Equal(t, "data/genius-referrals.csv", cfg.Input.AdvocatesPath)
	assert.Equal(t, "latin-1", cfg.Input.Encoding)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "INPUT_ADVOCATES_PATH=/exports/advocates.csv\nOUTPUT_FILENAME=import.csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("INPUT_ADVOCATES_PATH")
		os.Unsetenv("OUTPUT_FILENAME")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/exports/advocates.csv", cfg.Input.AdvocatesPath)
	assert.Equal(t, "import.csv", cfg.Output.Filename)
}
