// Package config loads runtime settings from defaults, an optional
// .jathagam.yaml and JATHAGAM_* environment variables. Command flags take
// their defaults from the loaded Config.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "JATHAGAM"

// Config holds all runtime configuration.
type Config struct {
	// CutoffYears bounds Mahadasha generation; zero or negative disables it.
	CutoffYears float64 `mapstructure:"cutoff_years"`
	Depth       int     `mapstructure:"depth"`
	LogCalls    bool    `mapstructure:"log_calls"`
	Timezone    string  `mapstructure:"timezone"`
	Ayanamsa    string  `mapstructure:"ayanamsa"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		CutoffYears: 105,
		Depth:       4,
		LogCalls:    false,
		Timezone:    "UTC",
		Ayanamsa:    "Lahiri",
	}
}

// New returns a viper instance with defaults, env binding and config
// search paths applied. cfgFile overrides the search when non-empty.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("cutoff_years", d.CutoffYears)
	v.SetDefault("depth", d.Depth)
	v.SetDefault("log_calls", d.LogCalls)
	v.SetDefault("timezone", d.Timezone)
	v.SetDefault("ayanamsa", d.Ayanamsa)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".jathagam")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the config file if one exists and decodes v into a Config.
// A missing file is not an error; an unreadable or invalid one is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the dasha builder cannot honor.
func (c Config) Validate() error {
	if c.Depth < 1 || c.Depth > 4 {
		return fmt.Errorf("depth %d outside 1..4", c.Depth)
	}
	return nil
}
