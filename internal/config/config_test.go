package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ACADAGENT_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Empty(t, cfg.Catalog.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 25*time.Minute+30*time.Second, cfg.Quiz.Duration)
	require.Equal(t, time.Second, cfg.Tutor.ReplyDelay)
	require.Equal(t, filepath.Join(home, "Documents", "academicagent"), cfg.Export.Dir)
	require.True(t, cfg.UI.Mouse)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "DEBUG"

[session]
student_name = "Raj"

[tutor]
reply_delay = "250ms"

[keys.bindings]
sign-out = ["ctrl+x"]
`), 0o644))
	t.Setenv("ACADAGENT_CONFIG", path)
	t.Setenv("ACADAGENT_QUIZ_DURATION", "10m")

	flags := Flags()
	require.NoError(t, flags.Parse([]string{"--catalog", filepath.Join(home, "catalog.db")}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "Raj", cfg.Session.StudentName)
	require.Equal(t, 250*time.Millisecond, cfg.Tutor.ReplyDelay)
	require.Equal(t, 10*time.Minute, cfg.Quiz.Duration)
	require.Equal(t, filepath.Join(home, "catalog.db"), cfg.Catalog.Path)
	require.Equal(t, []string{"ctrl+x"}, cfg.Keys.Bindings["sign-out"])
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	isolate(t)
	flags := Flags()
	require.NoError(t, flags.Parse([]string{"--log-level", "loud"}))
	_, err := Load(flags)
	require.ErrorContains(t, err, "invalid config")
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	cfg.Session.StudentName = "Priya"
	cfg.Quiz.Duration = 5 * time.Minute

	path := filepath.Join(home, ".config", "academicagent", "config.toml")
	require.NoError(t, Save(path, cfg))

	again, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "Priya", again.Session.StudentName)
	require.Equal(t, 5*time.Minute, again.Quiz.Duration)
}
