package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.Output.Directory)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
	assert.Empty(t, cfg.Mannings.File)
}

func TestValidate_RepairsInvalidValues(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "loud", Format: "xml"},
	}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultOutputDir, cfg.Output.Directory)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func TestValidate_KeepsValidValues(t *testing.T) {
	cfg := &Config{
		Output:  OutputConfig{Directory: "/out"},
		Logging: LoggingConfig{Level: "debug", Format: "json"},
	}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/out", cfg.Output.Directory)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfigDir(t *testing.T) {
	assert.Contains(t, ConfigDir(), ".sections")
}
