// Package main is the entry point for the jumpline demo editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/jumpline/internal/app"
	"github.com/dshills/jumpline/internal/plugin/motion"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, motionPath, logPath, logLevel := parseFlags()

	logger := app.NullLogger
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = app.NewLogger(app.LoggerConfig{
			Level:  app.ParseLogLevel(logLevel),
			Output: f,
			Prefix: "jumpline",
		})
	}
	opts.Logger = logger

	if motionPath != "" {
		source, err := os.ReadFile(motionPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read motion script: %v\n", err)
			return 1
		}
		script, err := motion.Load(string(source))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer script.Close()
		opts.Motion = script
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		os.Exit(1)
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (opts app.Options, motionPath, logPath, logLevel string) {
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml or .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Text, "text", "the quick brown fox jumps over the lazy dog", "Initial line content")
	flag.StringVar(&motionPath, "motion", "", "Lua motion script bound to Ctrl+G")
	flag.StringVar(&logPath, "log-file", "", "Log file path (logging disabled when empty)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Jumpline - label-based jump navigation demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: jumpline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+W  jump to a word start\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+E  jump to a word end\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+F  jump to a character\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+G  run the loaded motion script\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q  quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Jumpline %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch logLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", logLevel)
		os.Exit(1)
	}

	return opts, motionPath, logPath, logLevel
}
