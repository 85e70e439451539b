package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Upstream sports data provider
	SportsAPIBaseURL  string        `mapstructure:"SPORTS_API_BASE_URL"`
	SportsAPIKey      string        `mapstructure:"SPORTS_API_KEY"`
	SportsAPITimeout  time.Duration `mapstructure:"SPORTS_API_TIMEOUT"`
	UseMockSportsData bool          `mapstructure:"USE_MOCK_SPORTS_DATA"`

	// Game list cache
	CacheTTL     time.Duration `mapstructure:"CACHE_TTL"`
	CacheMaxSize int           `mapstructure:"CACHE_MAX_SIZE"`

	// Upstream call protection
	UpstreamRateLimit       int `mapstructure:"UPSTREAM_RATE_LIMIT"` // requests per minute
	CircuitBreakerThreshold int `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Scheduled cache warming
	PrefetchEnabled  bool   `mapstructure:"PREFETCH_ENABLED"`
	PrefetchSchedule string `mapstructure:"PREFETCH_SCHEDULE"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("SPORTS_API_BASE_URL", "")
	viper.SetDefault("SPORTS_API_KEY", "")
	viper.SetDefault("SPORTS_API_TIMEOUT", "10s")
	viper.SetDefault("USE_MOCK_SPORTS_DATA", false)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_MAX_SIZE", 100)
	viper.SetDefault("UPSTREAM_RATE_LIMIT", 60)
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("PREFETCH_ENABLED", false)
	viper.SetDefault("PREFETCH_SCHEDULE", "0 */30 * * * *")

	viper.AutomaticEnv()

	// .env file is optional; environment variables alone are fine
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.CacheMaxSize <= 0 {
		return nil, fmt.Errorf("CACHE_MAX_SIZE must be positive, got %d", config.CacheMaxSize)
	}
	if config.SportsAPITimeout <= 0 {
		return nil, fmt.Errorf("SPORTS_API_TIMEOUT must be positive, got %s", config.SportsAPITimeout)
	}

	return &config, nil
}

// HasSportsAPI reports whether a live upstream is fully configured.
func (c *Config) HasSportsAPI() bool {
	return c.SportsAPIBaseURL != "" && c.SportsAPIKey != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
