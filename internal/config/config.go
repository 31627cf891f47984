// Package config provides Viper-based configuration loading for the calculator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides, e.g.
// TTK_TELNET_PORT or TTK_CALC_FORMULA.
const EnvPrefix = "TTK"

// TelnetConfig holds Telnet acceptor settings.
type TelnetConfig struct {
	// Host is the bind address for the Telnet listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the Telnet listener.
	Port int `mapstructure:"port"`
	// ReadTimeout is the per-read timeout; an idle session is closed after it.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the per-write timeout for Telnet connections.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// MaxSessions caps concurrent sessions. 0 means unlimited.
	MaxSessions int `mapstructure:"max_sessions"`
	// Color enables ANSI styling of results.
	Color bool `mapstructure:"color"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (t TelnetConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CalcConfig holds calculator settings shared by every session.
type CalcConfig struct {
	// Formula selects the damage formula: "variant" or "standard".
	Formula string `mapstructure:"formula"`
	// RosterDir is a directory of YAML profiles that replaces the built-in
	// example roster. Empty keeps the built-in profiles.
	RosterDir string `mapstructure:"roster_dir"`
	// ScriptInstructionLimit caps Lua opcodes per custom multiplier.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
	// DefaultLevel is the session's starting level.
	DefaultLevel int `mapstructure:"default_level"`
	// DefaultPower is the session's starting move power.
	DefaultPower int `mapstructure:"default_power"`
}

// Config is the top-level application configuration.
type Config struct {
	Telnet  TelnetConfig  `mapstructure:"telnet"`
	Logging LoggingConfig `mapstructure:"logging"`
	Calc    CalcConfig    `mapstructure:"calc"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateTelnet(c.Telnet); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCalc(c.Calc); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateTelnet(t TelnetConfig) error {
	var errs []string
	if t.Port < 1 || t.Port > 65535 {
		errs = append(errs, fmt.Sprintf("telnet.port must be 1-65535, got %d", t.Port))
	}
	if t.ReadTimeout < 0 {
		errs = append(errs, "telnet.read_timeout must not be negative")
	}
	if t.WriteTimeout < 0 {
		errs = append(errs, "telnet.write_timeout must not be negative")
	}
	if t.MaxSessions < 0 {
		errs = append(errs, fmt.Sprintf("telnet.max_sessions must be >= 0, got %d", t.MaxSessions))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateCalc(c CalcConfig) error {
	var errs []string
	validFormulas := map[string]bool{"variant": true, "standard": true}
	if !validFormulas[c.Formula] {
		errs = append(errs, fmt.Sprintf("calc.formula must be one of [variant, standard], got %q", c.Formula))
	}
	if c.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("calc.script_instruction_limit must be >= 0, got %d", c.ScriptInstructionLimit))
	}
	if c.DefaultLevel < 1 || c.DefaultLevel > 100 {
		errs = append(errs, fmt.Sprintf("calc.default_level must be 1-100, got %d", c.DefaultLevel))
	}
	if c.DefaultPower < 1 {
		errs = append(errs, fmt.Sprintf("calc.default_power must be >= 1, got %d", c.DefaultPower))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and TTK_ environment
// overrides installed, for callers that bind their own flags before
// LoadFromViper.
//
// Postcondition: Returns a non-nil Viper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("telnet.host", "0.0.0.0")
	v.SetDefault("telnet.port", 4100)
	v.SetDefault("telnet.read_timeout", "15m")
	v.SetDefault("telnet.write_timeout", "30s")
	v.SetDefault("telnet.max_sessions", 64)
	v.SetDefault("telnet.color", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("calc.formula", "variant")
	v.SetDefault("calc.roster_dir", "")
	v.SetDefault("calc.script_instruction_limit", 10000)
	v.SetDefault("calc.default_level", 50)
	v.SetDefault("calc.default_power", 100)
}
