package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPort is the agent's listening port when nothing overrides it.
const DefaultPort = 1161

// AgentConfig is the agentctl runtime configuration.
type AgentConfig struct {
	Host               string `toml:"host"`
	Port               int    `toml:"port"`
	MetricsAddr        string `toml:"metrics_addr"`
	ReadTimeoutSeconds int    `toml:"read_timeout_seconds"`
	Reuseport          bool   `toml:"reuseport"`
}

// DefaultAgentConfig returns the configuration used when no file is given.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Port:               DefaultPort,
		ReadTimeoutSeconds: 30,
	}
}

// LoadAgentConfig reads a TOML file, applies defaults and validates.
func LoadAgentConfig(path string) (AgentConfig, error) {
	cfg := DefaultAgentConfig()
	if err := loadToml(path, &cfg); err != nil {
		return AgentConfig{}, err
	}
	if err := ValidateAgentConfig(cfg); err != nil {
		return AgentConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateAgentConfig(cfg AgentConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("agent config port out of range: %d", cfg.Port)
	}
	if cfg.ReadTimeoutSeconds < 0 {
		return fmt.Errorf("agent config read_timeout_seconds negative: %d", cfg.ReadTimeoutSeconds)
	}
	return nil
}

// ListenAddr joins host and port into the agent's listen address.
func (c AgentConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
