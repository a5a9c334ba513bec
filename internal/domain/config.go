package domain

import "fmt"

// DefaultDataFile is where orders are kept when nothing else is configured.
const DefaultDataFile = "data.csv"

// Config holds tool configuration loaded from .ordertrack.yaml and the environment.
type Config struct {
	DataFile  string      `yaml:"data_file"  json:"data_file"  env:"ORDERTRACK_DATA_FILE"`
	LargestBy CompareMode `yaml:"largest_by" json:"largest_by" env:"ORDERTRACK_LARGEST_BY"`
	LogLevel  string      `yaml:"log_level"  json:"log_level"  env:"ORDERTRACK_LOG_LEVEL"`
}

// ValidLogLevels enumerates the accepted log_level values.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// DefaultConfig keeps data in data.csv and ranks amounts as text.
func DefaultConfig() Config {
	return Config{
		DataFile:  DefaultDataFile,
		LargestBy: CompareText,
		LogLevel:  "info",
	}
}

// WithDefaults fills unset values from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.DataFile == "" {
		c.DataFile = def.DataFile
	}
	if c.LargestBy == "" {
		c.LargestBy = def.LargestBy
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.LargestBy != "" && !isValidCompareMode(c.LargestBy) {
		return fmt.Errorf("largest_by: unknown mode %q (valid: %s, %s)", c.LargestBy, CompareText, CompareNumeric)
	}
	if c.LogLevel != "" && !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	return nil
}

func isValidCompareMode(m CompareMode) bool {
	for _, v := range ValidCompareModes {
		if m == v {
			return true
		}
	}
	return false
}

func isValidLogLevel(level string) bool {
	for _, v := range ValidLogLevels {
		if level == v {
			return true
		}
	}
	return false
}
