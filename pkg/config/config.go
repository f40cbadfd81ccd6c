// Package config provides configuration management for pulpctl.
// It handles loading, validating and saving the settings file that selects the pulp
// tool binaries, the default credentials and repo type, and how output and logs are
// rendered. Missing values fall back to sensible defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/fsutil"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// General settings
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Tool settings
	AdminBinary    string        `yaml:"admin_binary"`
	ConsumerBinary string        `yaml:"consumer_binary"`
	CommandTimeout time.Duration `yaml:"command_timeout"` // 0 disables the timeout

	// Credential settings
	Login      string `yaml:"login"`
	Password   string `yaml:"password,omitempty"`
	UseKeyring bool   `yaml:"use_keyring"`

	// Resource defaults
	DefaultRepoType string `yaml:"default_repo_type"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json, yaml
	ColorOutput  bool   `yaml:"color_output"`
	LogLevel     string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat    string `yaml:"log_format"` // text, json
	LogFile      string `yaml:"log_file,omitempty"`
}

// Default configuration values.
const (
	// DefaultLogin is the pulp login used when none is configured.
	DefaultLogin = "admin"

	// DefaultOutputFormat is the output format used when none is configured.
	DefaultOutputFormat = "text"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log record format used when none is configured.
	DefaultLogFormat = "text"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

var (
	validOutputFormats = map[string]bool{"text": true, "json": true, "yaml": true}
	validLogLevels     = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats    = map[string]bool{"text": true, "json": true}
	validRepoTypes     = map[string]bool{pulp.RepoTypeRPM: true, pulp.RepoTypePuppet: true}
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			AdminBinary:     pulp.DefaultAdminBinary,
			ConsumerBinary:  pulp.DefaultConsumerBinary,
			Login:           DefaultLogin,
			UseKeyring:      true,
			DefaultRepoType: pulp.RepoTypeRPM,
			OutputFormat:    DefaultOutputFormat,
			ColorOutput:     true,
			LogLevel:        DefaultLogLevel,
			LogFormat:       DefaultLogFormat,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
// Keys absent from the document keep their default value; unknown keys are rejected.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfigValidation, err)
	}

	return config, nil
}

// SaveConfig writes the configuration to path through a temporary file and a rename.
// The file may hold a password and is written with owner-only permissions.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModePrivate)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	// Atomically replace the config file
	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	return validateSettings(c.Settings)
}

func validateSettings(s Settings) error {
	if strings.TrimSpace(s.AdminBinary) == "" || strings.TrimSpace(s.ConsumerBinary) == "" {
		return errors.ErrEmptyBinary
	}
	if s.CommandTimeout < 0 {
		return errors.ErrCommandTimeoutInvalid
	}
	if !validRepoTypes[s.DefaultRepoType] {
		return errors.ErrInvalidRepoTypeWithDetails(s.DefaultRepoType)
	}
	if !validOutputFormats[s.OutputFormat] {
		return errors.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	if !validLogLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	if !validLogFormats[s.LogFormat] {
		return errors.ErrInvalidLogFormatWithDetails(s.LogFormat)
	}
	return nil
}

// applyDefaults fills in values an explicit empty entry in the file cleared.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.AdminBinary == "" {
		c.Settings.AdminBinary = defaults.Settings.AdminBinary
	}
	if c.Settings.ConsumerBinary == "" {
		c.Settings.ConsumerBinary = defaults.Settings.ConsumerBinary
	}
	if c.Settings.Login == "" {
		c.Settings.Login = defaults.Settings.Login
	}
	if c.Settings.DefaultRepoType == "" {
		c.Settings.DefaultRepoType = defaults.Settings.DefaultRepoType
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = defaults.Settings.LogFormat
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "pulpctl", "config.yaml"), nil
}
