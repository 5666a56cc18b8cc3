package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "."
	ConfigFileName    = "bullet-trade.yml"

	// DefaultSealedExt is appended to a file name when it is sealed.
	DefaultSealedExt = ".enc"

	// DefaultPlainExt is the extension of plaintext strategy files.
	DefaultPlainExt = ".py"
)

// Config holds the settings for the strategy encryption tooling.
type Config struct {
	// Key is the strategy key string. Empty means "use the key file", and if
	// that is also unset, the built-in development key.
	Key string `yaml:"key"`

	// KeyFile is the path of a file whose (trimmed) contents are the key
	// string. Keeping the key out of config files and environments is the
	// reason this exists.
	KeyFile string `yaml:"key_file"`

	// VaultDir is the directory holding sealed strategy files.
	VaultDir string `yaml:"vault_dir"`

	// PlainExt is the extension of plaintext strategy files in the vault.
	PlainExt string `yaml:"plain_ext"`

	// SealedExt is the extension appended to sealed files.
	SealedExt string `yaml:"sealed_ext"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

func newDefault() *Config {
	return &Config{
		VaultDir:  "strategies",
		PlainExt:  DefaultPlainExt,
		SealedExt: DefaultSealedExt,
		sources:   make(map[string]string),
	}
}

// Load resolves the configuration from file, .env and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("BULLET_TRADE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Populate the environment from .env if one exists. A missing file is
	// fine.
	_ = godotenv.Load()

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{"key", "key_file", "vault_dir", "plain_ext", "sealed_ext"}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.Key != "" {
		c.Key = file.Key
		c.sources["key"] = "file"
	}
	if file.KeyFile != "" {
		c.KeyFile = file.KeyFile
		c.sources["key_file"] = "file"
	}
	if file.VaultDir != "" {
		c.VaultDir = file.VaultDir
		c.sources["vault_dir"] = "file"
	}
	if file.PlainExt != "" {
		c.PlainExt = file.PlainExt
		c.sources["plain_ext"] = "file"
	}
	if file.SealedExt != "" {
		c.SealedExt = file.SealedExt
		c.sources["sealed_ext"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("STRATEGY_KEY"); val != "" {
		c.Key = val
		c.sources["key"] = "environment"
	}
	if val := os.Getenv("STRATEGY_KEY_FILE"); val != "" {
		c.KeyFile = val
		c.sources["key_file"] = "environment"
	}
	if val := os.Getenv("BULLET_TRADE_VAULT_DIR"); val != "" {
		c.VaultDir = val
		c.sources["vault_dir"] = "environment"
	}
}

// ResolveKey returns the key string to hand to the cipher: the configured key,
// else the trimmed contents of the key file, else the empty string (which the
// cipher maps to its built-in development key).
func (c *Config) ResolveKey() (string, error) {
	if c.Key != "" {
		return c.Key, nil
	}
	if c.KeyFile != "" {
		data, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read key file %s: %w", c.KeyFile, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", nil
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}
