package app

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console, json
}

// OutputConfig controls how commands render results.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
	TopN  int  `mapstructure:"top_n"` // ranked candidates shown by crack
}

// AttackConfig carries attack-engine knobs.
type AttackConfig struct {
	MaskTimeoutMS int `mapstructure:"mask_timeout_ms"`
}

// Config is the full runtime configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Attack AttackConfig `mapstructure:"attack"`
}

// MaskTimeout returns the configured brute-force mask timeout.
func (c *Config) MaskTimeout() time.Duration {
	return time.Duration(c.Attack.MaskTimeoutMS) * time.Millisecond
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads configuration once: cipherkit.yaml in the working directory
// or $HOME/.cipherkit, overridden by CIPHERKIT_* environment variables,
// falling back to defaults. A missing file is the normal case.
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName("cipherkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.cipherkit")

		viper.SetDefault("log.level", "info")
		viper.SetDefault("log.format", "console")
		viper.SetDefault("output.color", true)
		viper.SetDefault("output.top_n", 5)
		viper.SetDefault("attack.mask_timeout_ms", 500)

		viper.SetEnvPrefix("CIPHERKIT")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Debug().Msg("no config file found, using defaults")
			} else {
				log.Error().Err(err).Msg("error reading config file")
			}
		}

		cfg = &Config{}
		if err := viper.Unmarshal(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to unmarshal config")
		}
	})
	return cfg
}
