// FILE: src/cmd/logbridge/bootstrap.go
package main

import (
	"context"
	"fmt"
	"strings"

	"logbridge/src/internal/config"
	"logbridge/src/internal/service"
	"logbridge/src/internal/version"

	"github.com/lixenwraith/log"
)

// bootstrapService creates and starts the bridge and the status server
func bootstrapService(ctx context.Context, cfg *config.Config) (*service.Service, *service.StatusServer, error) {
	svc := service.New(ctx, logger)

	if err := svc.StartBridge(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to start bridge: %w", err)
	}

	status, err := service.NewStatusServer(&cfg.Status, svc, logger)
	if err != nil {
		svc.Shutdown()
		return nil, nil, err
	}
	if status != nil {
		if err := status.Start(); err != nil {
			svc.Shutdown()
			return nil, nil, err
		}
	}

	logger.Info("msg", "logbridge started",
		"version", version.Short(),
		"syslog_port", cfg.Syslog.Port,
		"sinks", len(cfg.Sinks),
		"status_enabled", cfg.Status.Enabled)

	Print("Listening for syslog datagrams on %s:%d\n", cfg.Syslog.Host, cfg.Syslog.Port)

	return svc, status, nil
}

// applyFlagOverrides folds CLI logging flags into the loaded config
func applyFlagOverrides(cfg *config.Config, flagCfg *FlagConfig) {
	if cfg.Logging == nil {
		cfg.Logging = config.DefaultLogConfig()
	}

	if flagCfg.Quiet {
		cfg.Quiet = true
	}
	if flagCfg.LogOutput != "" {
		cfg.Logging.Output = flagCfg.LogOutput
	}
	if flagCfg.LogLevel != "" {
		cfg.Logging.Level = flagCfg.LogLevel
	}
	if flagCfg.LogDir != "" && cfg.Logging.File != nil {
		cfg.Logging.File.Directory = flagCfg.LogDir
	}
	if flagCfg.LogName != "" && cfg.Logging.File != nil {
		cfg.Logging.File.Name = flagCfg.LogName
	}
	if flagCfg.LogConsole != "" && cfg.Logging.Console != nil {
		cfg.Logging.Console.Target = flagCfg.LogConsole
	}
}

// initializeLogger sets up the logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	var configArgs []string

	if cfg.Quiet {
		// In quiet mode, disable ALL logging output
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=false",
			"level=255")

		return startLogger(configArgs)
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_console=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target=stdout")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target=stderr")

	case "file":
		configArgs = append(configArgs, "enable_console=false")
		configureFileLogging(&configArgs, cfg)

	case "both":
		configArgs = append(configArgs, "enable_console=true")
		configureFileLogging(&configArgs, cfg)
		configureConsoleTarget(&configArgs, cfg)

	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	// Apply format if specified
	if cfg.Logging.Console != nil && cfg.Logging.Console.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", cfg.Logging.Console.Format))
	}

	return startLogger(configArgs)
}

// startLogger applies the accumulated overrides and starts the logger
func startLogger(configArgs []string) error {
	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return err
	}
	return logger.Start()
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name),
			fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB),
			fmt.Sprintf("max_total_size_mb=%d", cfg.Logging.File.MaxTotalSizeMB))

		if cfg.Logging.File.RetentionHours > 0 {
			*configArgs = append(*configArgs,
				fmt.Sprintf("retention_period_hrs=%.1f", cfg.Logging.File.RetentionHours))
		}
	}
}

// configureConsoleTarget sets up console output parameters
func configureConsoleTarget(configArgs *[]string, cfg *config.Config) {
	target := "stderr" // default

	if cfg.Logging.Console != nil && cfg.Logging.Console.Target != "" {
		target = cfg.Logging.Console.Target
	}

	if target == "split" {
		*configArgs = append(*configArgs, "console_target=split")
	} else {
		*configArgs = append(*configArgs, fmt.Sprintf("console_target=%s", target))
	}
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
