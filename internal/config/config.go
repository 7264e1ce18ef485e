package config

// Config represents the application configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Mannings ManningsConfig `mapstructure:"mannings" yaml:"mannings"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	DryRun    bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// ManningsConfig contains Manning's table settings
type ManningsConfig struct {
	// File is an optional strict-schema override file (JSON or YAML).
	File string `mapstructure:"file" yaml:"file"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and repairs invalid values
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = DefaultLogLevel
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
