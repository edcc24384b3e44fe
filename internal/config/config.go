// Package config loads the relkit.yml file describing where each component
// keeps its version constant and which binary the process wrapper launches.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Component names. Bot is the primary component: its version is the one
// reported back to the release orchestrator as the release tag.
const (
	ComponentBot = "bot"
	ComponentAPI = "api"

	Primary = ComponentBot
)

// ComponentNames returns the known components in reporting order.
func ComponentNames() []string {
	return []string{ComponentBot, ComponentAPI}
}

type Config struct {
	Components map[string]Component `yaml:"components" mapstructure:"components"`
	Pyproject  string               `yaml:"pyproject" mapstructure:"pyproject"`
}

// Component describes one independently versioned deliverable.
type Component struct {
	// Source is the Python file holding the authoritative version constant.
	Source string `yaml:"source" mapstructure:"source"`
	// Key is the constant name, e.g. __version__.
	Key string `yaml:"key" mapstructure:"key"`
	// Binary is the executable the run command spawns.
	Binary string `yaml:"binary,omitempty" mapstructure:"binary"`
	// Manifest is the process-manager manifest regenerated by sync.
	Manifest string `yaml:"manifest,omitempty" mapstructure:"manifest"`
}

const defaultVersionKey = "__version__"

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(v)
}

// LoadFromYAML loads config from YAML bytes - helper for tests.
func LoadFromYAML(data []byte) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pyproject == "" {
		c.Pyproject = "pyproject.toml"
	}
	for name, comp := range c.Components {
		if comp.Key == "" {
			comp.Key = defaultVersionKey
			c.Components[name] = comp
		}
	}
}

// Validate checks that both known components are configured with a source
// file. Binary and manifest paths are only required by the commands that use
// them and are checked there.
func (c *Config) Validate() error {
	if len(c.Components) == 0 {
		return errors.New("config must define components")
	}

	for _, name := range ComponentNames() {
		comp, ok := c.Components[name]
		if !ok {
			return fmt.Errorf("component %q is not configured", name)
		}
		if comp.Source == "" {
			return fmt.Errorf("component %q: source file is required", name)
		}
	}

	for name := range c.Components {
		if name != ComponentBot && name != ComponentAPI {
			return fmt.Errorf("unknown component %q (want bot or api)", name)
		}
	}

	return nil
}

// Component returns the named component or an error identifying the bad name.
func (c *Config) Component(name string) (Component, error) {
	comp, ok := c.Components[name]
	if !ok {
		return Component{}, fmt.Errorf("unknown component %q (want bot or api)", name)
	}
	return comp, nil
}
