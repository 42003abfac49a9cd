// Package config loads proposal assistant settings from defaults, an
// optional proposal.yaml file and PROPOSAL_* environment variables, in that
// order of precedence (later wins). Command-line flags are applied on top by
// the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Harshal279/chatbot/internal/ai"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "PROPOSAL"

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "proposal.yaml"

// Config holds the assistant settings. The API key is deliberately absent;
// it is resolved by the credential package and never stored here.
type Config struct {
	AIEnabled   bool          `yaml:"ai_enabled" envconfig:"AI_ENABLED"`
	AIBaseURL   string        `yaml:"ai_base_url" envconfig:"AI_BASE_URL"`
	AIModel     string        `yaml:"ai_model" envconfig:"AI_MODEL"`
	AIMaxTokens int           `yaml:"ai_max_tokens" envconfig:"AI_MAX_TOKENS"`
	AITimeout   time.Duration `yaml:"ai_timeout" envconfig:"AI_TIMEOUT"`

	ExportDir    string `yaml:"export_dir" envconfig:"EXPORT_DIR"`
	ExportFormat string `yaml:"export_format" envconfig:"EXPORT_FORMAT"`

	LogFile  string `yaml:"log_file" envconfig:"LOG_FILE"`
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		AIEnabled:    false,
		AIBaseURL:    ai.DefaultBaseURL,
		AIModel:      ai.DefaultModel,
		AIMaxTokens:  ai.DefaultMaxTokens,
		AITimeout:    ai.DefaultTimeout,
		ExportDir:    ".",
		ExportFormat: "txt",
		LogLevel:     "info",
	}
}

// AIConfig returns the summarizer client settings.
func (c *Config) AIConfig() ai.Config {
	return ai.Config{
		BaseURL:   c.AIBaseURL,
		Model:     c.AIModel,
		MaxTokens: c.AIMaxTokens,
		Timeout:   c.AITimeout,
	}
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.AIBaseURL) == "" {
		errs = append(errs, errors.New("ai_base_url is empty"))
	}
	if strings.TrimSpace(c.AIModel) == "" {
		errs = append(errs, errors.New("ai_model is empty"))
	}
	if c.AIMaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("ai_max_tokens must be positive, got %d", c.AIMaxTokens))
	}
	if c.AITimeout <= 0 {
		errs = append(errs, fmt.Errorf("ai_timeout must be positive, got %s", c.AITimeout))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ReadConfig reads a YAML config file over the defaults.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg as YAML to path, creating parent directories.
func WriteConfig(fsys afero.Fs, path string, cfg *Config) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load builds the effective config. An explicitly named file must exist;
// DefaultFile is optional. A .env file in the working directory is loaded
// into the environment first, without overriding variables already set.
func Load(fsys afero.Fs, path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	switch {
	case path != "":
		c, err := ReadConfig(fsys, path)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		c, err := ReadConfig(fsys, DefaultFile)
		if err == nil {
			cfg = c
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
