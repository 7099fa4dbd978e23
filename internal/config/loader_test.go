package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TD_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	defaults := NewConfig()
	assert.Equal(t, defaults.Database, cfg.Database)
	assert.Equal(t, defaults.Display, cfg.Display)
	assert.Equal(t, defaults.Application, cfg.Application)
}

func TestLoader_Load_File(t *testing.T) {
	path := writeConfigFile(t, `
[database]
dir = "/var/lib/td"
filename = "work.db"
query_timeout = "2s"

[display]
warning = "!!"
done = "x"
not_done = "."
color = true

[application]
verbose = true
`)
	t.Setenv("TD_CONFIG", path)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, filepath.Join("/var/lib/td", "work.db"), cfg.GetDatabasePath())
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, Signs{Warning: "!!", Done: "x", NotDone: "."}, cfg.GetSigns())
	assert.True(t, cfg.Display.Color)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_Load_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
[display]
done = "file"
`)
	t.Setenv("TD_CONFIG", path)
	t.Setenv("TD_SIGN_DONE", "env")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.Display.DoneSign)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "unknown key",
			content:     "[display]\nglyph = \"*\"\n",
			errContains: "display.glyph",
		},
		{
			name:        "malformed toml",
			content:     "[display\n",
			errContains: "decode config file",
		},
		{
			name:        "invalid value",
			content:     "[application]\ntimeout = \"0s\"\n",
			errContains: "application timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TD_CONFIG", writeConfigFile(t, tt.content))

			_, err := NewLoader().Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Setenv("TD_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	t.Setenv("TD_DB_FILENAME", "env.db")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	require.Equal(t, "env.db", cfg.Database.Filename)

	dbPath := "/tmp/flag.db"
	filename := "flag.db"
	warning := "LATE"
	color := true
	timeout := 5 * time.Second
	verbose := true

	ApplyOverrides(cfg, &ConfigOverrides{
		DBPath:      &dbPath,
		DBFilename:  &filename,
		WarningSign: &warning,
		Color:       &color,
		Timeout:     &timeout,
		Verbose:     &verbose,
	})
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/flag.db", cfg.GetDatabasePath())
	assert.Equal(t, "flag.db", cfg.Database.Filename)
	assert.Equal(t, "LATE", cfg.Display.WarningSign)
	assert.Equal(t, "✔", cfg.Display.DoneSign)
	assert.True(t, cfg.Display.Color)
	assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestApplyOverrides_InvalidValueFailsValidation(t *testing.T) {
	cfg := NewConfig()

	zero := time.Duration(0)
	ApplyOverrides(cfg, &ConfigOverrides{DBWriteTimeout: &zero})
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write timeout must be positive")
}

func TestApplyOverrides_NilFieldsLeaveConfig(t *testing.T) {
	cfg := NewConfig()
	before := *cfg

	ApplyOverrides(cfg, &ConfigOverrides{})
	assert.Equal(t, before, *cfg)
}
