// FILE: src/cmd/logbridge/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
)

// FlagConfig carries command-line overrides applied on top of the file
// and environment configuration.
type FlagConfig struct {
	ConfigFile  string
	ShowVersion bool
	Quiet       bool

	LogOutput  string
	LogLevel   string
	LogDir     string
	LogName    string
	LogConsole string
}

// ParseFlags parses the command line into a FlagConfig.
func ParseFlags() (*FlagConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	cfg := &FlagConfig{}
	fs.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress all console output")

	fs.StringVar(&cfg.LogOutput, "log-output", "", "Log output: file, stdout, stderr, both, none (overrides config)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	fs.StringVar(&cfg.LogDir, "log-dir", "", "Log directory (when using file output)")
	fs.StringVar(&cfg.LogName, "log-name", "", "Log file base name (when using file output)")
	fs.StringVar(&cfg.LogConsole, "log-console", "", "Console target: stdout, stderr, split (overrides config)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "logbridge - Legacy Syslog to Event Sink Bridge\n\n")
	fmt.Fprintf(os.Stderr, "Receives RFC 3164 syslog datagrams over UDP, rewrites the PRI headers\n")
	fmt.Fprintf(os.Stderr, "into facility.severity labels and forwards the messages to a local\n")
	fmt.Fprintf(os.Stderr, "event sink.\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	fs.PrintDefaults()

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Run with default config (UDP 514, event sink in ./events)\n")
	fmt.Fprintf(os.Stderr, "  %s\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Run with a custom config and debug logging\n")
	fmt.Fprintf(os.Stderr, "  %s --config /etc/logbridge.toml --log-level debug\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  LOGBRIDGE_CONFIG_FILE   Config file path\n")
	fmt.Fprintf(os.Stderr, "  LOGBRIDGE_CONFIG_DIR    Config directory\n")
	fmt.Fprintf(os.Stderr, "  LOGBRIDGE_SYSLOG_PORT   UDP port override\n")
}
