// Package config loads command configuration from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// ErrUsage reports a wrong invocation.
var ErrUsage = errors.New("usage: turing [flags] <program>")

// Clear selects when the console clears the screen before rendering.
type Clear string

const (
	ClearAuto   Clear = "auto"
	ClearAlways Clear = "always"
	ClearNever  Clear = "never"
)

func (c *Clear) UnmarshalText(text []byte) error {
	switch v := Clear(text); v {
	case ClearAuto, ClearAlways, ClearNever:
		*c = v
		return nil
	}
	return fmt.Errorf("invalid clear mode %q", text)
}

func (c Clear) String() string { return string(c) }

func (c *Clear) Set(s string) error { return c.UnmarshalText([]byte(s)) }

// Config holds interpreter configuration.
type Config struct {
	Program    string
	Run        bool       `env:"TURING_RUN"`
	Trace      bool       `env:"TURING_TRACE"`
	MaxSteps   int        `env:"TURING_MAX_STEPS"   envDefault:"0"`
	Width      int        `env:"TURING_WIDTH"       envDefault:"100"`
	Clear      Clear      `env:"TURING_CLEAR"       envDefault:"auto"`
	LogLevel   slog.Level `env:"TURING_LOG_LEVEL"   envDefault:"WARN"`
	LogFile    string     `env:"TURING_LOG_FILE"`
	LogJournal bool       `env:"TURING_LOG_JOURNAL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses the environment, then flags, into a Config. Exactly one
// positional argument, the program path, is required.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.BoolVar(&cfg.Run, "run", cfg.Run, "run to the end without pausing between steps")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "render every step in run mode")
	fs.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "stop after this many steps (0 for no limit)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "tape cells per rendered line")
	fs.Var(&cfg.Clear, "clear", "clear the screen before rendering: auto, always or never")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also write JSON logs to this file")
	fs.BoolVar(&cfg.LogJournal, "log-journal", cfg.LogJournal, "also write logs to the systemd journal")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 1 {
		return Config{}, ErrUsage
	}
	cfg.Program = fs.Arg(0)
	if cfg.Width <= 0 {
		return Config{}, fmt.Errorf("width must be positive, got %d", cfg.Width)
	}
	if cfg.MaxSteps < 0 {
		return Config{}, fmt.Errorf("max-steps must not be negative, got %d", cfg.MaxSteps)
	}
	return cfg, nil
}
