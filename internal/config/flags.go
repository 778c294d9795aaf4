package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and bounds tracing")
	flagFormat  = flag.String("format", "", "Report format: text, yaml or obj")
	flagWorkers = flag.Int("workers", -1, "Parallel part reports (0 = one per part)")
	flagPart    = flag.String("part", "", "Only report the named part")
	flagLogFile = flag.String("log-file", "", "Also write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
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
		cfg.Logging.TraceBounds = true
	}
	if *flagFormat != "" {
		cfg.Report.Format = *flagFormat
	}
	if *flagWorkers >= 0 {
		cfg.Report.Workers = *flagWorkers
	}
	if *flagPart != "" {
		cfg.Report.Part = *flagPart
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
