package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viant/afs"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/viant/beanutil/parser"
	"github.com/viant/beanutil/property"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	// Tags lists the struct tags naming serialized properties, in lookup order
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	// Unexported grants property access to unexported fields
	Unexported bool   `yaml:"unexported,omitempty" json:"unexported,omitempty"`
	TimeLayout string `yaml:"timeLayout,omitempty" json:"timeLayout,omitempty"`
	Output     string `yaml:"output,omitempty" json:"output,omitempty"`
	Verbose    bool   `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.Init()
	return cfg
}

// Load reads a YAML (or JSON) configuration from any afs supported URL
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", URL, err)
	}
	return cfg, nil
}

// Init sets defaults
func (c *Config) Init() {
	if len(c.Tags) == 0 {
		c.Tags = []string{"json"}
	}
	if c.TimeLayout == "" {
		c.TimeLayout = time.RFC3339
	}
	if c.Output == "" {
		c.Output = OutputJSON
	}
}

func (c *Config) Validate() error {
	for _, tag := range c.Tags {
		if strings.TrimSpace(tag) == "" || strings.ContainsAny(tag, ` :"`) {
			return fmt.Errorf("invalid tag name %q", tag)
		}
	}
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported output %q", c.Output)
	}
	return nil
}

// AccessorOptions returns the property.Accessor options described by the config
func (c *Config) AccessorOptions(logger *zap.Logger) []property.Option {
	return []property.Option{
		property.WithTags(c.Tags...),
		property.WithUnexported(c.Unexported),
		property.WithLogger(logger),
	}
}

// ParserOptions returns the parser.Parser options described by the config
func (c *Config) ParserOptions(logger *zap.Logger) []parser.Option {
	return []parser.Option{
		parser.WithTimeLayout(c.TimeLayout),
		parser.WithLogger(logger),
	}
}
