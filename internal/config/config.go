package config

import (
	"fmt"
	"os"

	"github.com/aretw0/htmlpp/internal/logging"
	"github.com/aretw0/htmlpp/pkg/trim"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "htmlpp.yaml"

// Config represents the structure of htmlpp.yaml.
type Config struct {
	Log   LogConfig   `yaml:"log" json:"log"`
	Serve ServeConfig `yaml:"serve" json:"serve"`
	MCP   MCPConfig   `yaml:"mcp" json:"mcp"`
	Trim  TrimConfig  `yaml:"trim" json:"trim"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

type ServeConfig struct {
	Port string `yaml:"port" json:"port"`
}

type MCPConfig struct {
	Transport string `yaml:"transport" json:"transport"`
	Port      int    `yaml:"port" json:"port"`
}

// TrimConfig selects rendering defaults. The catalogs themselves are fixed in code.
type TrimConfig struct {
	Length  int    `yaml:"length" json:"length"`
	Catalog string `yaml:"catalog" json:"catalog"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Serve: ServeConfig{Port: "8080"},
		MCP:   MCPConfig{Transport: "stdio", Port: 8080},
		Trim:  TrimConfig{Length: trim.DefaultLength, Catalog: trim.CatalogActive},
	}
}

// Load reads a YAML config file on top of Default.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if err := trim.CheckLength(c.Trim.Length); err != nil {
		return fmt.Errorf("trim.length: %w", err)
	}
	if _, err := trim.Lookup(c.Trim.Catalog); err != nil {
		return err
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown mcp.transport %q (supported: stdio, sse)", c.MCP.Transport)
	}
	return nil
}
