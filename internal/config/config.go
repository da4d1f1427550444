// Package config loads tool settings with viper.
//
// Precedence, highest first: command-line flags, STABLEMATCH_* environment
// variables, an optional config file, built-in defaults. The config file is
// the one named by --config, or stablematch.{yaml,toml,json} found in the
// working directory or $HOME/.config/stablematch.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. STABLEMATCH_DATA_DIR.
const EnvPrefix = "STABLEMATCH"

// Keys.
const (
	KeyDataDir   = "data_dir"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyTrace     = "trace"
	KeyOutput    = "output"
	KeyWorkers   = "workers"
)

// FlagConfig names the flag that points at an explicit config file.
const FlagConfig = "config"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// Config holds the resolved settings shared by the command-line tools.
type Config struct {
	DataDir   string `mapstructure:"data_dir" json:"dataDir" yaml:"data_dir"`
	LogLevel  string `mapstructure:"log_level" json:"logLevel" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" json:"logFormat" yaml:"log_format"`
	Trace     bool   `mapstructure:"trace" json:"trace" yaml:"trace"`
	Output    string `mapstructure:"output" json:"output" yaml:"output"`
	Workers   int    `mapstructure:"workers" json:"workers" yaml:"workers"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-" json:"file,omitempty" yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:   "data",
		LogLevel:  "info",
		LogFormat: LogConsole,
		Trace:     true,
		Output:    OutputText,
		Workers:   1,
	}
}

// AddCommonFlags registers the flags every tool accepts.
func AddCommonFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "config file (default: stablematch.{yaml,toml,json} in . or $HOME/.config/stablematch)")
	fs.String(FlagName(KeyDataDir), d.DataDir, "directory searched when an input path does not exist as given")
	fs.String(FlagName(KeyLogLevel), d.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.String(FlagName(KeyLogFormat), d.LogFormat, "log format (console or json)")
}

// Load resolves the configuration. Flags in fs whose names match a key
// (with '-' for '_') are bound; fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyDataDir, d.DataDir)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyTrace, d.Trace)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyWorkers, d.Workers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var file string
	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
		if f := fs.Lookup(FlagConfig); f != nil {
			file = f.Value.String()
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("stablematch")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "stablematch"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigError{Field: FlagConfig, Message: err.Error()}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindFlags binds every flag of fs that corresponds to a known key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var result error
	for _, key := range []string{KeyDataDir, KeyLogLevel, KeyLogFormat, KeyTrace, KeyOutput, KeyWorkers} {
		f := fs.Lookup(FlagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

// FlagName returns the command-line spelling of key, e.g. "data-dir".
func FlagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// Validate checks enumerated and numeric settings. All problems are
// reported together.
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		result = multierror.Append(result, &ConfigError{Field: KeyLogLevel, Message: fmt.Sprintf("unknown level %q", c.LogLevel)})
	}
	switch c.LogFormat {
	case LogConsole, LogJSON:
	default:
		result = multierror.Append(result, &ConfigError{Field: KeyLogFormat, Message: fmt.Sprintf("must be %q or %q, got %q", LogConsole, LogJSON, c.LogFormat)})
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		result = multierror.Append(result, &ConfigError{Field: KeyOutput, Message: fmt.Sprintf("must be text, json or yaml, got %q", c.Output)})
	}
	if c.Workers < 1 {
		result = multierror.Append(result, &ConfigError{Field: KeyWorkers, Message: fmt.Sprintf("must be at least 1, got %d", c.Workers)})
	}

	return result.ErrorOrNil()
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
