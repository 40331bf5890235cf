package jira

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".jira.yml"

// Config holds the connection settings jcli reads from ~/.jira.yml.
type Config struct {
	Server   string `yaml:"server"`
	Username string `yaml:"username"`
	Token    string `yaml:"token"`

	// Password is accepted as an alias of Token.
	Password string `yaml:"password"`
}

// DefaultConfigPath honors JIRA_CONFIG, then falls back to ~/.jira.yml.
func DefaultConfigPath() (string, error) {
	if path := os.Getenv("JIRA_CONFIG"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read jira config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse jira config %s: %w", path, err)
	}
	if cfg.Token == "" {
		cfg.Token = cfg.Password
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Server == "" {
		return errors.New("jira config: server is required")
	}
	if c.Token == "" {
		return errors.New("jira config: token is required")
	}
	return nil
}
