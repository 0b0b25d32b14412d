package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "CONFIG_DIR", "STORAGE_DRIVER", "SQLITE_PATH",
		"DATABASE_URI", "MIGRATIONS_PATH", "REDIS_URL", "REDIS_PREFIX",
		"RUN_ADDRESS", "CALENDAR_ACCESS", "CALENDAR_NAME", "AUDIO_COMMAND",
		"AUDIO_PLAY_COMMAND", "MEDIA_DIR", "API_TOKEN",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	chdir(t, t.TempDir())
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	configDir := filepath.Join(home, ".projectx")
	assert.Equal(t, EnvLocal, cfg.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, configDir, cfg.ConfigDir)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(configDir, "prefs.db"), cfg.Storage.SQLitePath)
	assert.Equal(t, "projectx:", cfg.Storage.RedisPrefix)
	assert.Equal(t, "localhost:8080", cfg.Server.RunAddress)
	assert.True(t, cfg.Capability.CalendarAccess)
	assert.Equal(t, "Personal", cfg.Capability.CalendarName)
	assert.Equal(t, filepath.Join(configDir, "media"), cfg.Capability.MediaDir)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CALENDAR_ACCESS", "denied")
	t.Setenv("CONFIG_DIR", "/var/lib/projectx")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.RedisURL)
	assert.False(t, cfg.Capability.CalendarAccess)
	assert.Equal(t, "/var/lib/projectx/prefs.db", cfg.Storage.SQLitePath)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("STORAGE_DRIVER=memory\nRUN_ADDRESS=:9090\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("STORAGE_DRIVER")
		_ = os.Unsetenv("RUN_ADDRESS")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, ":9090", cfg.Server.RunAddress)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "projectx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_env: dev\nstorage_driver: memory\naudio_command: rec {path}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "rec {path}", cfg.Capability.AudioCommand)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown env", map[string]string{"APP_ENV": "staging"}},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "etcd"}},
		{"postgres without uri", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"redis without url", map[string]string{"STORAGE_DRIVER": "redis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestConfig_SetEnv(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)

	require.NoError(t, cfg.SetEnv("PROD"))
	assert.True(t, cfg.IsProd())

	assert.Error(t, cfg.SetEnv("foo"))
	assert.Equal(t, EnvProd, cfg.Env)
}
