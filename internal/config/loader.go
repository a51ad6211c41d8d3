package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/philipp01105/slogger/formatter"
	"github.com/philipp01105/slogger/sink/filesink"
	"github.com/philipp01105/slogger/sink/tracesink"
)

// EnvPrefix prefixes every environment override, e.g. SLOGGER_FILE_PATH
const EnvPrefix = "SLOGGER"

// ConfigPaths defines the paths searched for slogger.{yaml,toml,json}
var ConfigPaths = []string{
	".",
	"./configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// Load reads the configuration. An explicit path must exist; otherwise
// the search paths are tried and a missing file leaves the defaults.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	// Variables already set in the environment win over .env files
	if err := loadDotEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("slogger")
		for _, p := range ConfigPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults mirrors the defaults of an opened Logger
func setDefaults(v *viper.Viper) {
	v.SetDefault("level", "all")
	v.SetDefault("timeFormat", formatter.DefaultTimeFormat)
	v.SetDefault("singleThreaded", false)

	v.SetDefault("console.enabled", true)
	v.SetDefault("console.stream", "stdout")

	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.category", tracesink.DefaultCategory)

	v.SetDefault("file.path", "")
	v.SetDefault("file.maxBytes", filesink.DefaultMaxBytes)
	v.SetDefault("file.rotate", true)

	v.SetDefault("diagnostics.mode", DiagnosticsNone)
}
