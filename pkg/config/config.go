// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, upstream API and cache settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Twitter contains upstream tweets API configuration
	Twitter TwitterConfig

	// Cache contains cache configuration
	Cache CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string

	// RateLimit is the allowed requests per second per client, 0 disables
	RateLimit int

	// RateBurst is the burst size of the rate limiter
	RateBurst int
}

// TwitterConfig holds upstream tweets API configuration
type TwitterConfig struct {
	// APIURL is the upstream tweets endpoint
	APIURL string

	// APIToken is the bearer credential for the upstream API
	APIToken string

	// HTTPTimeout is the upstream request timeout in seconds
	HTTPTimeout int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string

	// TTL is the tweet set time-to-live in seconds
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Twitter: TwitterConfig{
			APIURL:      getEnvOrDefault("TWEETS_API_URL", "https://app.codescreen.com/api/assessments/tweets"),
			APIToken:    os.Getenv("TWEETS_API_TOKEN"),
			HTTPTimeout: getEnvAsIntOrDefault("TWEETS_HTTP_TIMEOUT", 30),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:        getEnvAsIntOrDefault("CACHE_TTL", 1800),
			SQLitePath: getEnvOrDefault("SQLITE_CACHE_PATH", "tweets-cache.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Twitter.APIURL == "" {
		return errors.New("tweets API URL cannot be empty")
	}

	if c.Twitter.APIToken == "" {
		return errors.New("tweets API token cannot be empty")
	}

	if c.Twitter.HTTPTimeout < 1 {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	if c.Cache.TTL < 1 {
		return errors.New("cache TTL must be at least 1 second")
	}

	switch c.Cache.Type {
	case "memory", "sqlite":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'sqlite'")
	}

	return nil
}
