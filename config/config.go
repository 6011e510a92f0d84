// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/frontdesk/intent"
	"github.com/poiesic/frontdesk/search"
)

// Cache drivers.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Config holds all configuration for a frontdesk service.
type Config struct {
	Server     ServerConfig      `yaml:"server"`
	Feeds      FeedsConfig       `yaml:"feeds"`
	FAQ        FAQConfig         `yaml:"faq"`
	Embedding  EmbeddingConfig   `yaml:"embedding"`
	Matching   MatchingConfig    `yaml:"matching"`
	Vocabulary intent.Vocabulary `yaml:"vocabulary"`
	Cache      CacheConfig       `yaml:"cache"`
	Storage    StorageConfig     `yaml:"storage"`
	Log        LogConfig         `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	// AdminToken guards POST /admin/reload. Empty disables the check.
	AdminToken string `yaml:"admin_token"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// FeedsConfig holds upstream feed settings. URLs without an http(s) scheme
// are read from disk.
type FeedsConfig struct {
	LocationsURL   string        `yaml:"locations_url"`
	JobsURL        string        `yaml:"jobs_url"`
	Timeout        time.Duration `yaml:"timeout"`
	RetryAttempts  int           `yaml:"retry_attempts"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
	UserAgent      string        `yaml:"user_agent"`
	JobTTL         time.Duration `yaml:"job_ttl"`
	JobRetryAfter  time.Duration `yaml:"job_retry_after"`
	JobFetchLimit  time.Duration `yaml:"job_fetch_limit"`
}

// FAQConfig points at the directory of FAQ records.
type FAQConfig struct {
	Directory string `yaml:"directory"`
}

// EmbeddingConfig holds embedding service settings.
type EmbeddingConfig struct {
	Host        string        `yaml:"host"`
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key"`
	CacheSize   int           `yaml:"cache_size"`
	BatchSize   int           `yaml:"batch_size"`
	PoolSize    int           `yaml:"pool_size"`
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
}

// MatchingConfig holds thresholds and limits of the matchers and router.
type MatchingConfig struct {
	Location           search.LocationScoring `yaml:"location"`
	IgnoredAliases     []string               `yaml:"ignored_aliases"`
	LocalityThreshold  int                    `yaml:"locality_threshold"`
	DisplayLimit       int                    `yaml:"display_limit"`
	FAQThreshold       float64                `yaml:"faq_threshold"`
	GuardKeywords      []string               `yaml:"guard_keywords"`
	Suggestions        int                    `yaml:"suggestions"`
	SuggestionMinScore float64                `yaml:"suggestion_min_score"`
	PoolSize           int                    `yaml:"pool_size"`
}

// CacheConfig holds answer cache settings.
type CacheConfig struct {
	Driver     string        `yaml:"driver"`
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
	Prefix   string `yaml:"prefix"`
}

// StorageConfig locates the badger database holding feed snapshots and
// FAQ vectors. An empty Path keeps everything in memory.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// InMemory reports whether storage lives only in memory.
func (s StorageConfig) InMemory() bool {
	return s.Path == ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			RequestTimeout:  25 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Feeds: FeedsConfig{
			LocationsURL:   "https://novotergum.de/wp-content/uploads/standorte-data.xml",
			JobsURL:        "https://novotergum.de/novotergum_job-sitemap.xml",
			Timeout:        15 * time.Second,
			RetryAttempts:  3,
			RetryBaseDelay: 500 * time.Millisecond,
			UserAgent:      "frontdesk/1.0",
			JobTTL:         6 * time.Hour,
			JobRetryAfter:  time.Minute,
			JobFetchLimit:  20 * time.Second,
		},
		FAQ: FAQConfig{
			Directory: "faq",
		},
		Embedding: EmbeddingConfig{
			Host:        "http://localhost:11434/v1",
			Model:       "embeddinggemma",
			APIKey:      "none",
			CacheSize:   1024,
			BatchSize:   32,
			PoolSize:    4,
			MaxAttempts: 3,
			BaseDelay:   500 * time.Millisecond,
		},
		Matching: MatchingConfig{
			Location:           search.DefaultLocationScoring(),
			LocalityThreshold:  search.DefaultLocalityThreshold,
			DisplayLimit:       search.DefaultDisplayLimit,
			FAQThreshold:       search.DefaultFAQThreshold,
			GuardKeywords:      append([]string(nil), search.DefaultGuardKeywords...),
			Suggestions:        3,
			SuggestionMinScore: 0.4,
		},
		Cache: CacheConfig{
			Driver:     CacheMemory,
			TTL:        10 * time.Minute,
			MaxEntries: 1024,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				PoolSize: 10,
				Prefix:   "frontdesk:",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file over the defaults and applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// VocabularyOrDefault returns the built-in vocabulary with any configured
// lists replacing their defaults.
func (c *Config) VocabularyOrDefault() intent.Vocabulary {
	return intent.DefaultVocabulary().Merge(c.Vocabulary)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	if c.Feeds.LocationsURL == "" || c.Feeds.JobsURL == "" {
		return ErrFeedURLRequired
	}
	if c.Feeds.RetryAttempts < 1 {
		return fmt.Errorf("%w: retry_attempts must be at least 1", ErrInvalidValue)
	}
	if c.Embedding.Model == "" {
		return ErrEmbeddingModelRequired
	}
	if c.Embedding.MaxAttempts < 1 {
		return fmt.Errorf("%w: embedding max_attempts must be at least 1", ErrInvalidValue)
	}
	if c.Embedding.BatchSize < 1 {
		return fmt.Errorf("%w: embedding batch_size must be at least 1", ErrInvalidValue)
	}
	m := c.Matching
	if m.Location.Threshold < 0 {
		return fmt.Errorf("%w: location threshold %d", ErrInvalidThreshold, m.Location.Threshold)
	}
	if m.LocalityThreshold < 0 || m.LocalityThreshold > 100 {
		return fmt.Errorf("%w: locality threshold %d", ErrInvalidThreshold, m.LocalityThreshold)
	}
	if m.FAQThreshold < -1 || m.FAQThreshold > 1 {
		return fmt.Errorf("%w: faq threshold %v", ErrInvalidThreshold, m.FAQThreshold)
	}
	if m.DisplayLimit < 1 {
		return fmt.Errorf("%w: display_limit must be at least 1", ErrInvalidValue)
	}
	if m.Suggestions < 0 {
		return fmt.Errorf("%w: suggestions must not be negative", ErrInvalidValue)
	}
	switch c.Cache.Driver {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCacheDriver, c.Cache.Driver)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidValue, c.Log.Format)
	}
	return nil
}
