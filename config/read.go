package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/shushrut/shushrut_backend/pkg/constants"
)

var GlobalConf *Config

// ReadConfig loads config.yaml from configPath and overlays SHUSHRUT_*
// environment variables (SHUSHRUT_MONGO_URI overrides mongo.uri). A missing
// file is tolerated when the mongo URI comes from the environment, so
// containerized deployments can run on env vars alone.
func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	viper.SetEnvPrefix("SHUSHRUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if os.Getenv("SHUSHRUT_MONGO_URI") == "" {
			return nil, fmt.Errorf("no config file in %q and SHUSHRUT_MONGO_URI not set: %w", configPath, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func MustReadConfig(path string) *Config {
	cfg, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	GlobalConf = cfg
	return cfg
}
