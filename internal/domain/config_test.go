package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordertrack/ordertrack/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "data.csv", cfg.DataFile)
	assert.Equal(t, domain.CompareText, cfg.LargestBy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_WithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := domain.Config{DataFile: "orders.csv"}.WithDefaults()
	assert.Equal(t, "orders.csv", cfg.DataFile)
	assert.Equal(t, domain.CompareText, cfg.LargestBy)
}

func TestConfig_ValidateRejectsUnknownMode(t *testing.T) {
	err := domain.Config{LargestBy: "alphabetical"}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "largest_by")
}

func TestConfig_ValidateRejectsUnknownLogLevel(t *testing.T) {
	err := domain.Config{LogLevel: "loud"}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestConfig_ValidateAcceptsEmpty(t *testing.T) {
	assert.NoError(t, domain.Config{}.Validate())
}
