package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/calc"
)

// config is the calculator configuration. It can be loaded from a YAML file,
// and flags override it.
type config struct {
	// Prompt is printed before each line when reading from a terminal.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb for results.
	Format string `yaml:"format"`
	// Exit lists the words that end the read loop, compared case-insensitively.
	Exit []string `yaml:"exit"`
	// AllowTrailing disables errors for input after a complete expression.
	AllowTrailing bool `yaml:"allow_trailing"`
	// MaxDepth is the nesting limit. Zero means the package default and
	// negative means unlimited.
	MaxDepth int `yaml:"max_depth"`
	// Color is one of auto, always, or never.
	Color string `yaml:"color"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// Tokens prints each line's tokens before its result.
	Tokens bool `yaml:"tokens"`
}

func defaultConfig() config {
	return config{
		Prompt:   ">> ",
		Format:   "%g",
		Exit:     []string{"sair", "exit"},
		Color:    "auto",
		LogLevel: "warning",
	}
}

// loadConfig reads a YAML config file over the defaults. An empty name gives
// the defaults.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", name, err)
	}
	return cfg, cfg.validate()
}

func (cfg *config) validate() error {
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf(`color must be "auto", "always", or "never", not %q`, cfg.Color)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	// fmt reports bad verbs and missing or extra operands inline as %!.
	if strings.Contains(fmt.Sprintf(cfg.Format, 1.5), "%!") {
		return fmt.Errorf("result format %q does not format one number", cfg.Format)
	}
	return nil
}

// options converts the config into evaluation options.
func (cfg *config) options() []calc.ParseOption {
	var opts []calc.ParseOption
	if cfg.AllowTrailing {
		opts = append(opts, calc.AllowTrailing())
	}
	switch {
	case cfg.MaxDepth > 0:
		opts = append(opts, calc.MaxDepth(cfg.MaxDepth))
	case cfg.MaxDepth < 0:
		opts = append(opts, calc.MaxDepth(0))
	}
	return opts
}

// isExit reports whether a trimmed line is one of the exit words.
func (cfg *config) isExit(line string) bool {
	for _, w := range cfg.Exit {
		if strings.EqualFold(line, w) {
			return true
		}
	}
	return false
}
