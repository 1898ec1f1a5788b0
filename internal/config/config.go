// Package config loads tabconv command settings from the environment.
package config

import "github.com/spf13/viper"

// EnvPrefix is prepended to every environment variable, e.g.
// TABCONV_LOG_LEVEL.
const EnvPrefix = "TABCONV"

type (
	Config struct {
		Log    Log
		Output Output
	}

	Log struct {
		Level  string // debug, info, warn, error
		Format string // text or json
	}

	Output struct {
		Format string // default conversion target
		Border string // border style for the table target
	}
)

// New reads the configuration from TABCONV_* environment variables, falling
// back to defaults.
func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("format", "table")
	v.SetDefault("border", "rounded")

	return &Config{
		Log: Log{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		Output: Output{
			Format: v.GetString("format"),
			Border: v.GetString("border"),
		},
	}
}
