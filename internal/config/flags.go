package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagRoot     = flag.String("root", "", "Project root directory")
	flagTitle    = flag.String("title", "", "Page title for index.html seeds")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
	flagNoModels = flag.Bool("no-models", false, "Skip GLB model placeholders")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments (command and its arguments).
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRoot != "" {
		cfg.Project.Root = *flagRoot
	}
	if *flagTitle != "" {
		cfg.Project.Title = *flagTitle
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagNoModels {
		cfg.Assets.Models = false
	}
}
