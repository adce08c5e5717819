package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration lets TOML values like "10s" decode into a time.Duration
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// TomlRemote configures where the feed is fetched from
type TomlRemote struct {
	FeedURL    string   `toml:"feed_url"`
	Timeout    Duration `toml:"timeout"`
	MaxRetries uint64   `toml:"max_retries"`
	UserAgent  string   `toml:"user_agent"`
}

// TomlCache configures the local cache
type TomlCache struct {
	Database     string `toml:"database"`
	MaxAgeInDays int    `toml:"max_age_days"`
}

// TomlServer configures the HTTP adapter
type TomlServer struct {
	Port int `toml:"port"`
}

// TomlConfig represents the top-level configuration
type TomlConfig struct {
	Remote TomlRemote `toml:"remote"`
	Cache  TomlCache  `toml:"cache"`
	Server TomlServer `toml:"server"`
}

// Default returns the configuration used for anything a file leaves unset
func Default() *TomlConfig {
	return &TomlConfig{
		Remote: TomlRemote{
			FeedURL:    "http://localhost:8080/v1/feed",
			Timeout:    Duration{10 * time.Second},
			MaxRetries: 3,
			UserAgent:  "essentialfeed",
		},
		Cache: TomlCache{
			Database:     "feed.db",
			MaxAgeInDays: 7,
		},
		Server: TomlServer{
			Port: 3000,
		},
	}
}

// LoadConfig reads path on top of the defaults. An empty path yields the defaults.
func LoadConfig(path string) (*TomlConfig, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *TomlConfig) Validate() error {
	if c.Remote.FeedURL == "" {
		return fmt.Errorf("remote.feed_url must be set")
	}
	if c.Cache.MaxAgeInDays < 1 {
		return fmt.Errorf("cache.max_age_days must be at least 1, got %d", c.Cache.MaxAgeInDays)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// WriteConfig writes cfg to path as TOML, refusing to overwrite an existing file
func WriteConfig(path string, cfg *TomlConfig) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
