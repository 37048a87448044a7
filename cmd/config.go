package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".stepfuse"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for stepfuse settings.
const envPrefix = "STEPFUSE"

// fileConfig holds the settings a config file or environment can provide.
// Explicitly set command-line flags always win over these.
type fileConfig struct {
	Framework       string `mapstructure:"framework"`
	OutputDir       string `mapstructure:"output_dir"`
	OutputFormat    string `mapstructure:"output_format"`
	StrictMode      bool   `mapstructure:"strict_mode"`
	PartialMatching bool   `mapstructure:"partial_matching"`
}

// loadFileConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise the config file is searched in CWD and $HOME. A missing config
// file is not an error; defaults are used.
func loadFileConfig(configPath string) (*fileConfig, error) {
	v := viper.New()

	v.SetDefault("framework", "playwright")
	v.SetDefault("output_dir", "output")
	v.SetDefault("output_format", "both")
	v.SetDefault("strict_mode", false)
	v.SetDefault("partial_matching", true)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
