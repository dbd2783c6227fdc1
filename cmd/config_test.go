package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colin-opt/colin-adapter/colin"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func float64Ptr(v float64) *float64 { return &v }

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeTempFile(t, "adapter.yaml", `
log_level: debug
max_input_bytes: 4096
objective:
  mode: last-term
  real_weight: 2
  integer_weight: 0
  binary_weight: 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(4096), cfg.InputLimit())
	assert.Equal(t, "last-term", cfg.Objective.Mode)

	// integer_weight: 0 is explicitly set, not treated as unset
	require.NotNil(t, cfg.Objective.IntegerWeight)
	f := cfg.NewApplication()
	assert.Equal(t, colin.ObjectiveLastTerm, f.Mode)
	assert.Equal(t, 2.0, f.RealWeight)
	assert.Equal(t, 0.0, f.IntegerWeight)
	assert.Equal(t, 10.0, f.BinaryWeight)
}

func TestLoadConfig_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a field name
	path := writeTempFile(t, "adapter.yaml", "objective:\n  real_wieght: 2\n")

	// WHEN loaded
	_, err := LoadConfig(path)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoadConfig_EmptyFile_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeTempFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	f := cfg.NewApplication()
	assert.Equal(t, colin.ObjectiveSum, f.Mode)
	assert.Equal(t, colin.DefaultRealWeight, f.RealWeight)
	assert.Equal(t, colin.DefaultIntegerWeight, f.IntegerWeight)
	assert.Equal(t, colin.DefaultBinaryWeight, f.BinaryWeight)
	assert.Equal(t, colin.DefaultMaxInputBytes, cfg.InputLimit())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate_Rejects(t *testing.T) {
	negative := int64(-1)
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad log level", Config{LogLevel: "loud"}},
		{"negative size", Config{MaxInputBytes: &negative}},
		{"unknown mode", Config{Objective: ObjectiveConfig{Mode: "overwrite"}}},
		{"infinite weight", Config{Objective: ObjectiveConfig{BinaryWeight: float64Ptr(math.Inf(1))}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
