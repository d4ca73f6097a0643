package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Script.Timeout)
	assert.Equal(t, 10000.0, cfg.Validate.Max)
	assert.True(t, cfg.Validate.Inclusive)
	assert.Equal(t, "table", cfg.Output)
}

func TestLoad(t *testing.T) {
	type tc struct {
		file     string
		env      map[string]string
		validate func(t *testing.T, cfg *Config)
	}

	tests := map[string]tc{
		"file overrides defaults": {
			file: "logger:\n  level: debug\nvalidate:\n  max: 500\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logger.Level)
				assert.Equal(t, 500.0, cfg.Validate.Max)
				assert.Equal(t, 0.0, cfg.Validate.Min)
			},
		},
		"env overrides file": {
			file: "output: table\n",
			env:  map[string]string{"UNITCALC_OUTPUT": "json", "UNITCALC_SCRIPT_TIMEOUT": "1s"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "json", cfg.Output)
				assert.Equal(t, time.Second, cfg.Script.Timeout)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "unitcalc.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o600))

			cfg, err := Load(viper.New(), path)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
}
