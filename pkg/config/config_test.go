package config

import (
	"os"
	"testing"
)

func loadWith(t *testing.T, env map[string]string) *Config {
	t.Helper()
	for key, value := range env {
		t.Setenv(key, value)
	}
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	return cfg
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()
	cfg := loadWith(t, nil)

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %v, want 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %v, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.TTL != 1800 {
		t.Errorf("Cache.TTL = %d, want 1800", cfg.Cache.TTL)
	}
	if cfg.Twitter.HTTPTimeout != 30 {
		t.Errorf("HTTPTimeout = %d, want 30", cfg.Twitter.HTTPTimeout)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	cfg := loadWith(t, map[string]string{
		"PORT":             "3000",
		"CACHE_TYPE":       "redis",
		"CACHE_TTL":        "600",
		"TWEETS_API_URL":   "https://tweets.example.com",
		"TWEETS_API_TOKEN": "secret",
		"REDIS_ADDRESS":    "redis:6379",
	})

	if cfg.Server.Port != "3000" {
		t.Errorf("Port = %v, want 3000", cfg.Server.Port)
	}
	if cfg.Cache.Type != "redis" || cfg.Cache.Redis.Address != "redis:6379" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL != 600 {
		t.Errorf("Cache.TTL = %d, want 600", cfg.Cache.TTL)
	}
	if cfg.Twitter.APIToken != "secret" {
		t.Errorf("APIToken = %v, want secret", cfg.Twitter.APIToken)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	cfg := loadWith(t, map[string]string{"CACHE_TTL": "not-a-number"})

	if cfg.Cache.TTL != 1800 {
		t.Errorf("Cache.TTL = %d, want default 1800", cfg.Cache.TTL)
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000", LogLevel: "info"},
		Twitter: TwitterConfig{
			APIURL:      "https://tweets.example.com",
			APIToken:    "secret",
			HTTPTimeout: 30,
		},
		Cache: CacheConfig{Type: "memory", TTL: 1800},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate returned error for valid config: %v", err)
	}
}

func TestValidate_SQLiteType(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Type = "sqlite"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate rejected sqlite cache type: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"empty API URL", func(c *Config) { c.Twitter.APIURL = "" }},
		{"empty API token", func(c *Config) { c.Twitter.APIToken = "" }},
		{"zero timeout", func(c *Config) { c.Twitter.HTTPTimeout = 0 }},
		{"zero TTL", func(c *Config) { c.Cache.TTL = 0 }},
		{"bad cache type", func(c *Config) { c.Cache.Type = "disk" }},
		{"redis without address", func(c *Config) {
			c.Cache.Type = "redis"
			c.Cache.Redis.Address = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should return an error")
			}
		})
	}
}
