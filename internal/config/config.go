// Package config holds the command-line tool's settings, loaded with viper
// from a config file, UNITCALC_* environment variables and flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. UNITCALC_LOGGER_LEVEL.
const EnvPrefix = "UNITCALC"

// Config is the tool configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" json:"logger"`
	Script   ScriptConfig   `mapstructure:"script" json:"script"`
	Validate ValidateConfig `mapstructure:"validate" json:"validate"`
	Output   string         `mapstructure:"output" json:"output"`
}

// LoggerConfig configures the zap logger and its optional rotating file.
type LoggerConfig struct {
	Level      string `mapstructure:"level" json:"level"`
	Format     string `mapstructure:"format" json:"format"` // console or json
	File       string `mapstructure:"file" json:"file"`     // empty disables file output
	MaxSize    int    `mapstructure:"max_size" json:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" json:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" json:"max_age"`
	Compress   bool   `mapstructure:"compress" json:"compress"`
}

// ScriptConfig configures expression units.
type ScriptConfig struct {
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// ValidateConfig configures the check command's validation chain.
type ValidateConfig struct {
	Min       float64 `mapstructure:"min" json:"min"`
	Max       float64 `mapstructure:"max" json:"max"`
	Inclusive bool    `mapstructure:"inclusive" json:"inclusive"`
	Context   bool    `mapstructure:"context" json:"context"` // fail units missing context
	Workers   int     `mapstructure:"workers" json:"workers"`
	MaxErrors int     `mapstructure:"max_errors" json:"max_errors"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("script.timeout", "250ms")

	v.SetDefault("validate.min", 0)
	v.SetDefault("validate.max", 10000)
	v.SetDefault("validate.inclusive", true)
	v.SetDefault("validate.context", false)
	v.SetDefault("validate.workers", 4)
	v.SetDefault("validate.max_errors", 1000)

	v.SetDefault("output", "table")
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Unmarshal(v)
	if err != nil {
		panic(fmt.Sprintf("unmarshal default config: %v", err))
	}
	return cfg
}

// Load reads path (or ./unitcalc.yaml when path is empty) into v with
// defaults and environment overrides applied. A missing default file is not
// an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("unitcalc")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return Unmarshal(v)
}

// Unmarshal decodes v into a Config.
func Unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
