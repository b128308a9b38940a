// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/lumberjack"
)

// Config is the TOML file layout. Every key mirrors a command-line flag;
// flags given explicitly on the command line win.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Generate GenerateConfig `toml:"generate"`
}

// LogConfig selects the slog handler and an optional rotating log file.
type LogConfig struct {
	Format     string `toml:"format"` // text | json
	Level      string `toml:"level"`  // debug | info | warn | error
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_log_size"` // megabytes
	MaxAge     int    `toml:"max_log_age"`  // days
	MaxBackups int    `toml:"max_log_backups"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Vertices int   `toml:"vertices"`
	Degree   int   `toml:"degree"`
	Seed     int64 `toml:"seed"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Format:  "text",
			Level:   "info",
			MaxSize: 100,
			MaxAge:  28,
		},
		Generate: GenerateConfig{
			Vertices: 1000,
			Degree:   10,
			Seed:     1,
		},
	}
}

// loadConfig overlays the TOML file at path on the defaults.
// An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not decode TOML config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	return cfg, nil
}

// newLogger builds the process logger. The returned closer releases the log
// file, if any.
func newLogger(c LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}

	out := stderr
	var closer io.Closer = nopCloser{}
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxAge:     c.MaxAge,
			MaxBackups: c.MaxBackups,
		}
		out, closer = lj, lj
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(c.Format) {
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		closer.Close()
		return nil, nil, fmt.Errorf("log format %q: want text or json", c.Format)
	}

	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fileSize is best effort; it reports 0 for anything it cannot stat.
func fileSize(path string) uint64 {
	fi, err := os.Stat(path)
	if err != nil || fi.Size() < 0 {
		return 0
	}

	return uint64(fi.Size())
}
