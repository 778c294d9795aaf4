// Package config handles partgeom configuration loading and management.
package config

// Config holds all partgeom settings.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	Format  string `yaml:"format"`  // text, yaml or obj
	Workers int    `yaml:"workers"` // parallel part reports, 0 = one per part
	Part    string `yaml:"part"`    // only report this part when set
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	LogFile     string `yaml:"log_file"`
	TraceBounds bool   `yaml:"trace_bounds"` // per-mesh debug entries from bounds computation
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Format:  "text",
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
