package env

import (
	"os"
	"path/filepath"
	"testing"

	"roulette_patterns/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestThresholdConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := NewThresholdConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, model.Thresholds{ColorParity: 5, Dozen: 20, Diagonal: 7}, cfg.Defaults())
	assert.Equal(t, model.ThresholdBounds{Min: 1, Max: 50, Default: 20}, cfg.Dozen())
}

func TestThresholdConfigFromYAML(t *testing.T) {
	path := writeFile(t, `
thresholds:
  color_parity:
    min: 2
    max: 10
    default: 4
  diagonal:
    min: 1
    max: 30
    default: 9
`)

	cfg, err := NewThresholdConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, model.ThresholdBounds{Min: 2, Max: 10, Default: 4}, cfg.ColorParity())
	// Секции нет, остаётся значение по умолчанию
	assert.Equal(t, model.ThresholdBounds{Min: 1, Max: 50, Default: 20}, cfg.Dozen())
	assert.Equal(t, model.Thresholds{ColorParity: 4, Dozen: 20, Diagonal: 9}, cfg.Defaults())
}

func TestThresholdConfigRejectsBadBounds(t *testing.T) {
	tests := map[string]string{
		"default above max": "thresholds:\n  dozen: {min: 1, max: 10, default: 11}\n",
		"zero min":          "thresholds:\n  diagonal: {min: 0, max: 10, default: 5}\n",
		"min above max":     "thresholds:\n  color_parity: {min: 8, max: 3, default: 5}\n",
		"broken yaml":       "thresholds: [",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewThresholdConfigFromYAML(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestRepositoryConfigYAML(t *testing.T) {
	cfg, err := NewThresholdConfigFromYAML(filepath.Join("..", "..", "..", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.Thresholds{ColorParity: 5, Dozen: 20, Diagonal: 7}, cfg.Defaults())
}
