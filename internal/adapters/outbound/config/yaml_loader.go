package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/ordertrack/ordertrack/internal/domain"
)

// FileName is the config file looked up in the working directory.
const FileName = ".ordertrack.yaml"

// YAMLLoader implements domain.ConfigLoader by reading a YAML file and
// applying ORDERTRACK_* environment overrides on top.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config at path. A missing file is not an error: defaults
// (plus any environment overrides) are returned.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	var cfg domain.Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return domain.Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg.WithDefaults(), nil
}

// Render produces the contents of a fresh config file for cfg.
func Render(cfg domain.Config) string {
	return fmt.Sprintf(`# ordertrack configuration

# CSV file holding the orders.
data_file: %s

# How "largest" ranks amounts: text compares the two-decimal amount strings
# ("999.00" > "1000.00"), numeric compares values.
largest_by: %s

log_level: %s
`, cfg.DataFile, cfg.LargestBy, cfg.LogLevel)
}
