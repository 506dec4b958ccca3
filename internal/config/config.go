// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the base name of the configuration file and the CLI binary
	AppName = "fit-scorer"
	// EnvPrefix prefixes every environment variable read by Load
	EnvPrefix = "FIT_SCORER"
)

// Config is the CLI configuration. Values come from, in increasing precedence:
// defaults, the YAML file, and FIT_SCORER_* environment variables.
type Config struct {
	Log         LogConfig   `mapstructure:"log"`
	LLM         LLMConfig   `mapstructure:"llm"`
	Cache       CacheConfig `mapstructure:"cache"`
	DatabaseURL string      `mapstructure:"database-url" validate:"omitempty,url"`
	Verbose     bool        `mapstructure:"verbose"`
}

// LogConfig selects the log encoder and level
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// LLMConfig enables model-backed priority classification
type LLMConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	APIKey        string        `mapstructure:"api-key" validate:"required_if=Enabled true"`
	LiteModel     string        `mapstructure:"lite-model" validate:"required"`
	StandardModel string        `mapstructure:"standard-model" validate:"required"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// CacheConfig configures the Redis result cache
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0,lte=15"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.api-key", "")
	v.SetDefault("llm.lite-model", "gemini-2.5-flash-lite")
	v.SetDefault("llm.standard-model", "gemini-2.5-flash")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("database-url", "")
	v.SetDefault("verbose", false)
}

// New returns a viper instance wired with defaults and environment bindings.
// Callers may bind command flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// the conventional variable names used by the rest of the tooling
	_ = v.BindEnv("llm.api-key", EnvPrefix+"_LLM_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("database-url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL")
	return v
}

// Load reads the configuration. An explicit path must exist; without one,
// fit-scorer.yaml in the working directory is used when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// LoadDotEnv loads environment variables from a .env file. A missing file is not an error;
// variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
