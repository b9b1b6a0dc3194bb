// ============================================================================
// RoboScript - robot-control language toolkit
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML with defaults
//              and ROBO_* environment overrides
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	roboerr "github.com/msto63/roboscript/foundation/core/error"
	robolog "github.com/msto63/roboscript/foundation/core/log"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ROBO_"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Runner  RunnerConfig  `toml:"runner" yaml:"runner"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// RunnerConfig holds program run limits
type RunnerConfig struct {
	MaxSteps int      `toml:"max_steps" yaml:"max_steps"`
	Timeout  Duration `toml:"timeout" yaml:"timeout"`
	Scenario string   `toml:"scenario" yaml:"scenario"`
	Audit    bool     `toml:"audit" yaml:"audit"`
}

// CacheConfig holds program cache settings. A negative size disables the
// cache.
type CacheConfig struct {
	Size int `toml:"size" yaml:"size"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		code := roboerr.CodeConfigError
		if errors.Is(err, os.ErrNotExist) {
			code = roboerr.CodeNotFound
		}
		return nil, roboerr.Wrap(err, "failed to read config").
			WithCode(code).
			WithOperation("load_config").
			WithDetail("file", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, parseFailure(err, path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, parseFailure(err, path)
		}
	default:
		return nil, roboerr.Newf("unsupported config format %q", filepath.Ext(path)).
			WithCode(roboerr.CodeConfigError).
			WithOperation("load_config").
			WithDetail("file", path)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by ROBO_CONFIG, or the first of the
// standard locations that exists.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return nil, roboerr.New("no configuration file found").
		WithCode(roboerr.CodeNotFound).
		WithOperation("load_config").
		WithDetail("searched", strings.Join(SearchPaths(), ", "))
}

// SearchPaths lists the standard config locations in lookup order
func SearchPaths() []string {
	paths := []string{"robo.toml", "robo.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "roboscript", "config.toml"),
			filepath.Join(home, ".config", "roboscript", "config.yaml"),
		)
	}
	return paths
}

// ApplyEnv applies ROBO_* overrides to a configuration built in code
func (c *Config) ApplyEnv() error {
	return c.applyEnv()
}

// Validate checks value ranges and the log settings
func (c *Config) Validate() error {
	invalid := func(field, msg string) error {
		return roboerr.New(msg).
			WithCode(roboerr.CodeInvalidConfig).
			WithOperation("validate_config").
			WithDetail("field", field)
	}

	if _, err := robolog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", err.Error())
	}
	if _, err := robolog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", err.Error())
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", "max_input_length must not be negative")
	}
	if c.Runner.MaxSteps < 0 {
		return invalid("runner.max_steps", "max_steps must not be negative")
	}
	if c.Runner.Timeout.Duration < 0 {
		return invalid("runner.timeout", "timeout must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "robo"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 64 * 1024
	}
	if c.Runner.MaxSteps == 0 {
		c.Runner.MaxSteps = 10000
	}
	if c.Runner.Timeout.Duration == 0 {
		c.Runner.Timeout.Duration = 10 * time.Second
	}
	if c.Cache.Size == 0 {
		c.Cache.Size = 128
	}
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"LOG_LEVEL":  &c.General.LogLevel,
		"LOG_FORMAT": &c.General.LogFormat,
		"SCENARIO":   &c.Runner.Scenario,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"MAX_INPUT_LENGTH": &c.Parser.MaxInputLength,
		"MAX_STEPS":        &c.Runner.MaxSteps,
		"CACHE_SIZE":       &c.Cache.Size,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return envFailure(key, v, err)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return envFailure("TIMEOUT", v, err)
		}
		c.Runner.Timeout.Duration = d
	}
	return nil
}

func parseFailure(err error, path string) error {
	return roboerr.Wrap(err, "failed to parse config").
		WithCode(roboerr.CodeConfigError).
		WithOperation("load_config").
		WithDetail("file", path)
}

func envFailure(key, value string, err error) error {
	return roboerr.Wrap(err, "invalid environment override").
		WithCode(roboerr.CodeInvalidConfig).
		WithOperation("apply_env").
		WithDetail("variable", EnvPrefix+key).
		WithDetail("value", value)
}
