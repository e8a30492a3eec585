package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitConfig resolves the tool options with this priority:
// 1. CLI flags (highest priority)
// 2. Environment variables (BITPLANNER_CONFIG, BITPLANNER_LOG_LEVEL)
// 3. Defaults
func InitConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	SetViperEnvSettings(v)
	SetViperDefaults(v)

	// unchanged flags only act as defaults, so env still wins over them
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if config.ConfigPath == "" {
		return nil, fmt.Errorf("settings file path cannot be empty")
	}

	return &config, nil
}
