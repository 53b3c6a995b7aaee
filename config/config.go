package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for docsearch.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Search  SearchConfig  `yaml:"search"`
	Upload  UploadConfig  `yaml:"upload"`
	Backend BackendConfig `yaml:"backend"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "bolt", "sqlite", "memory"
	Dir     string `yaml:"dir"`     // relative paths resolve against the root directory
}

// SearchConfig holds local search configuration.
type SearchConfig struct {
	ContextChars int    `yaml:"context_chars"`
	Ellipsis     string `yaml:"ellipsis"`
	CacheSize    int    `yaml:"cache_size"`
	CacheTTL     string `yaml:"cache_ttl"` // Go duration, e.g. "5m"
}

// UploadConfig holds configuration for adding documents.
type UploadConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Remote   bool     `yaml:"remote"`   // upload through the backend instead of extracting locally
	MaxSize  int64    `yaml:"max_size"` // bytes, 0 = unlimited
}

// BackendConfig holds the remote document/QA service settings.
type BackendConfig struct {
	BaseURL           string  `yaml:"base_url"`
	APIKeyEnv         string  `yaml:"api_key_env"` // optional, sent as a bearer token when set
	TimeoutSecs       int     `yaml:"timeout_secs"`
	RequestsPerSecond float64 `yaml:"requests_per_second"` // 0 = unlimited
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "bolt",
			Dir:     ".docsearch",
		},
		Search: SearchConfig{
			ContextChars: 50,
			Ellipsis:     "...",
			CacheSize:    100,
			CacheTTL:     "5m",
		},
		Upload: UploadConfig{
			Includes: []string{"**/*"},
			Excludes: []string{"**/.git/**", "**/.docsearch/**", "**/node_modules/**"},
			Remote:   false,
			MaxSize:  0,
		},
		Backend: BackendConfig{
			BaseURL:           "http://127.0.0.1:8000",
			APIKeyEnv:         "DOCSEARCH_API_KEY",
			TimeoutSecs:       120,
			RequestsPerSecond: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docsearch.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docsearch.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".docsearch", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheTTL parses Search.CacheTTL, falling back to five minutes.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Search.CacheTTL)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// DataDir returns the storage directory for root.
func (c *Config) DataDir(root string) string {
	dir := c.Storage.Dir
	if dir == "" {
		dir = ".docsearch"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// StorePath returns the database file for the configured backend.
func (c *Config) StorePath(root string) string {
	name := "documents.db"
	if c.Storage.Backend == "sqlite" {
		name = "documents.sqlite"
	}
	return filepath.Join(c.DataDir(root), name)
}

// EnsureDataDir ensures the storage directory exists.
func (c *Config) EnsureDataDir(root string) error {
	return os.MkdirAll(c.DataDir(root), 0755)
}
