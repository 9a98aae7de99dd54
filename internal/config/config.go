// Package config loads the CLI configuration from an optional YAML file
// layered under SEOCTL_* environment variable overrides. Command-line flags
// are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
	"k8s.io/client-go/util/homedir"
)

const envPrefix = "seoctl"

// Config is the CLI configuration.
type Config struct {
	APIURL string `yaml:"api_url" envconfig:"API_URL"`
	APIKey string `yaml:"api_key" envconfig:"API_KEY"`
	DBPath string `yaml:"db_path" envconfig:"DB_PATH"`

	// Poll settings apply to every tracked backend job.
	PollInterval    time.Duration `yaml:"poll_interval" envconfig:"POLL_INTERVAL"`
	PollTimeout     time.Duration `yaml:"poll_timeout" envconfig:"POLL_TIMEOUT"`
	PollMaxAttempts int           `yaml:"poll_max_attempts" envconfig:"POLL_MAX_ATTEMPTS"`
}

// DataDir returns the default directory for CLI state.
func DataDir() string {
	return filepath.Join(homedir.HomeDir(), ".seoctl")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

func (c *Config) defaults() {
	if c.APIURL == "" {
		c.APIURL = "http://localhost:8000"
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(DataDir(), "seoctl.db")
	}
	if c.PollInterval == 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.PollTimeout == 0 {
		c.PollTimeout = 10 * time.Minute
	}
}

// Load reads the configuration from path and applies environment overrides.
// A missing file at the default location is fine, an explicitly given path
// must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	usingDefault := path == ""
	if usingDefault {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && usingDefault:
		// No config file, env and defaults only.
	default:
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("could not process env overrides: %w", err)
	}

	cfg.defaults()
	return cfg, nil
}
