package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the scraper
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Session   SessionConfig   `mapstructure:"session"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug          bool          `mapstructure:"debug"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// SessionConfig selects where persisted login sessions live
type SessionConfig struct {
	DataDir string      `mapstructure:"data_dir"`
	Store   string      `mapstructure:"store"` // file or redis
	Redis   RedisConfig `mapstructure:"redis"`
}

func (s SessionConfig) Validate() error {
	switch s.Store {
	case "file":
		if strings.TrimSpace(s.DataDir) == "" {
			return fmt.Errorf("session.data_dir required when store is file")
		}
	case "redis":
		return s.Redis.Validate()
	default:
		return fmt.Errorf("session.store must be file or redis, got %q", s.Store)
	}
	return nil
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func (r RedisConfig) Validate() error {
	if strings.TrimSpace(r.Host) == "" {
		return fmt.Errorf("session.redis.host required")
	}
	if strings.TrimSpace(r.Port) == "" {
		return fmt.Errorf("session.redis.port required")
	}
	return nil
}

// TelemetryConfig contains metrics settings
type TelemetryConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MetricsPort int  `mapstructure:"metrics_port"`
}

func (t TelemetryConfig) Validate() error {
	if t.Enabled && t.MetricsPort <= 0 {
		return fmt.Errorf("telemetry.metrics_port must be > 0 when telemetry is enabled")
	}
	return nil
}

// LoadConfig loads config from file. A missing config file is tolerated;
// defaults cover every value.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.SetDefault("general.debug", false)
	viper.SetDefault("general.request_timeout", 10*time.Second)
	viper.SetDefault("session.store", "file")
	viper.SetDefault("session.data_dir", defaultDataDir())
	viper.SetDefault("session.redis.port", "6379")
	viper.SetDefault("session.redis.ttl", 90*24*time.Hour)
	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.metrics_port", 10011)

	if path == "" {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".userscraper"))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("USERSCRAPER")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.Session.Validate(); err != nil {
		panic(err)
	}
	if err := config.Telemetry.Validate(); err != nil {
		panic(err)
	}
	return &config
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".userscraper")
}
