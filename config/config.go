// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SladkyCitron/slogcolor"
	"github.com/goccy/go-yaml"
	"github.com/kballard/go-shellquote"

	iu "github.com/Sevlin/slaptctl/internal/util"
	"github.com/Sevlin/slaptctl/manager"
	"github.com/Sevlin/slaptctl/model"
	"github.com/Sevlin/slaptctl/slaptget"
)

// Config holds the tool configuration
type Config struct {
	// Executable is the path to the slapt-get binary
	Executable string `yaml:"executable"`

	// Flags are extra global flags passed to every slapt-get invocation,
	// shell quoting rules apply
	Flags string `yaml:"flags"`

	// MonitorPort is the port to listen on for accessing Prometheus stats
	MonitorPort int `yaml:"monitor_port"`

	// LogLevel is the log level to use
	// Valid values: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// NewDefaultConfig creates a config with the standard Slackware paths
func NewDefaultConfig() *Config {
	return &Config{
		Executable: slaptget.DefaultExecutable,
		LogLevel:   "info",
	}
}

// ParseConfig parses a YAML configuration document
func ParseConfig(c []byte) (*Config, error) {
	cfg := NewDefaultConfig()

	err := yaml.Unmarshal(c, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	cb, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(cb)
}

func (c *Config) Validate() error {
	if c.Executable == "" {
		return fmt.Errorf("executable must be set")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}

	_, err := c.ExtraFlags()
	if err != nil {
		return err
	}

	return nil
}

// ExtraFlags splits the configured flags string on shell quoting rules
func (c *Config) ExtraFlags() ([]string, error) {
	if c.Flags == "" {
		return nil, nil
	}

	words, err := shellquote.Split(c.Flags)
	if err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return words, nil
}

func (c *Config) NewLogger() (model.Logger, error) {
	var level slog.Level

	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	if iu.IsTerminal() {
		return manager.NewSlogLogger(
			slog.New(
				slogcolor.NewHandler(os.Stdout, &slogcolor.Options{
					Level: level,
				}))), nil
	} else {
		return manager.NewSlogLogger(
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))), nil
	}
}
