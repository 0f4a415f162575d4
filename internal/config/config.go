// Package config loads generator settings from walkergen.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"walker-generator/internal/artifact"
)

// DefaultFile is the config file name looked up when none is given.
const DefaultFile = "walkergen.yaml"

// Config drives one generation run.
type Config struct {
	// Root is the schema file extraction starts from.
	Root string `yaml:"root"`
	// Out is the directory the artifacts are written to.
	Out string `yaml:"out"`
	// Package overrides the artifact package name. Empty means the
	// schema root's package name is reused.
	Package string `yaml:"package"`
	// Artifacts overrides individual artifact file names.
	Artifacts artifact.Names `yaml:"artifacts"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Root:      "schema/ast.go",
		Out:       ".",
		Artifacts: artifact.DefaultNames(),
	}
}

// Load reads the config file at path. A missing file falls back to
// defaults; malformed YAML is an error.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes raw YAML and applies defaults for anything unset.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Root == "" {
		c.Root = def.Root
	}
	if c.Out == "" {
		c.Out = def.Out
	}
	if c.Artifacts.Nodes == "" {
		c.Artifacts.Nodes = def.Artifacts.Nodes
	}
	if c.Artifacts.Visit == "" {
		c.Artifacts.Visit = def.Artifacts.Visit
	}
	if c.Artifacts.Mutate == "" {
		c.Artifacts.Mutate = def.Artifacts.Mutate
	}
	if c.Artifacts.Transform == "" {
		c.Artifacts.Transform = def.Artifacts.Transform
	}
	if c.Artifacts.Span == "" {
		c.Artifacts.Span = def.Artifacts.Span
	}
}
