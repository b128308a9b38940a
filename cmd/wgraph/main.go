// SPDX-License-Identifier: MIT

// Command wgraph inspects and generates weighted graph fixtures stored as YAML.
//
//	wgraph [-config wgraph.toml] [-log-format text|json] [-log-level info] [-log-file path] <command> [args]
//
// Commands:
//
//	stats <file>                  counts, degree summary and fingerprint
//	neighbors <file> <key>        adjacent keys with weights
//	path <file> <from> <to>       shortest weighted path
//	dump <file>                   deterministic debug rendering
//	metrics <file>                Prometheus text exposition of the graph gauges
//	generate [-n N] [-degree D] [-seed S] -out <file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const usage = `usage: wgraph [flags] <command> [args]

commands:
  stats <file>
  neighbors <file> <key>
  path <file> <from> <to>
  dump <file>
  metrics <file>
  generate [-n N] [-degree D] [-seed S] -out <file>

flags:
`

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "TOML configuration file")
	logFormat := fs.String("log-format", "", "log format: text or json")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFile := fs.String("log-file", "", "rotate logs into this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "wgraph:", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-format":
			cfg.Log.Format = *logFormat
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-file":
			cfg.Log.File = *logFile
		}
	})

	logger, closer, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "wgraph:", err)
		return 1
	}
	defer closer.Close()

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}
	logger.Debug("command", "name", rest[0], "args", rest[1:], "config", *configPath)

	if err := dispatch(rest[0], rest[1:], cfg, logger, stdout, stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "wgraph:", err)
			fs.Usage()
			return 2
		}
		logger.Error("command failed", "name", rest[0], "err", err)
		fmt.Fprintln(stderr, "wgraph:", err)
		return 1
	}

	return 0
}

func dispatch(name string, args []string, cfg Config, logger *slog.Logger, stdout, stderr io.Writer) error {
	switch name {
	case "stats":
		return cmdStats(args, logger, stdout)
	case "neighbors":
		return cmdNeighbors(args, stdout)
	case "path":
		return cmdPath(args, stdout)
	case "dump":
		return cmdDump(args, stdout)
	case "metrics":
		return cmdMetrics(args, stdout)
	case "generate":
		return cmdGenerate(args, cfg.Generate, logger, stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q: %w", name, errUsage)
	}
}
