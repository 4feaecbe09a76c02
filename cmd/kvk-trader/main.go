package main

import (
	"fmt"
	"os"
	"strings"

	"kvk-trader/internal/cli"
	"kvk-trader/internal/config"
	"kvk-trader/internal/logging"
)

// configDirFromArgs pre-parses --config before cobra runs, so the
// config is loaded once and handed to the root command. Both the
// "--config dir" and "--config=dir" spellings are recognized.
func configDirFromArgs(args []string) string {
	configDir := ""
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			configDir = args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			configDir = strings.TrimPrefix(arg, "--config=")
		}
	}
	return configDir
}

func main() {
	cfg, err := config.Load(configDirFromArgs(os.Args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Console = cfg.Logging.Console
	logCfg.File = cfg.Logging.File
	logger := logging.NewLoggerWithConfig(logCfg)

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
