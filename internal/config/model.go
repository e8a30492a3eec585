package config

import (
	"strings"

	"github.com/bitplanner/bitplanner/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "BITPLANNER"

// Config holds the options of the command line tool itself. The user
// settings it edits live in the settings package.
type Config struct {
	// ConfigPath is the settings file to read and write.
	ConfigPath string `mapstructure:"config" yaml:"config"`
	LogLevel   string `mapstructure:"log-level" yaml:"log-level"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigPath: store.DefaultConfigPath(),
		LogLevel:   "info",
	}
}

// BindFlags registers the tool options as persistent flags on cmd.
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().StringP("config", "c", defaults.ConfigPath, "Settings file to use")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level (trace, debug, info, warn, error)")
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("config", defaults.ConfigPath)
	v.SetDefault("log-level", defaults.LogLevel)
}

// SetViperEnvSettings configures viper environment variable settings
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
