package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"roulette_patterns/internal/config"
	"roulette_patterns/internal/model"

	"gopkg.in/yaml.v3"
)

type boundsYAML struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

type thresholdsFileYAML struct {
	Thresholds struct {
		ColorParity *boundsYAML `yaml:"color_parity"`
		Dozen       *boundsYAML `yaml:"dozen"`
		Diagonal    *boundsYAML `yaml:"diagonal"`
	} `yaml:"thresholds"`
}

// Значения по умолчанию, если в config.yaml нет секции thresholds
var (
	defaultColorParityBounds = model.ThresholdBounds{Min: 1, Max: 20, Default: 5}
	defaultDozenBounds       = model.ThresholdBounds{Min: 1, Max: 50, Default: 20}
	defaultDiagonalBounds    = model.ThresholdBounds{Min: 1, Max: 20, Default: 7}
)

type thresholdConfig struct {
	colorParity model.ThresholdBounds
	dozen       model.ThresholdBounds
	diagonal    model.ThresholdBounds
}

// NewThresholdConfigFromYAML Читает диапазоны порогов из yaml файла.
// Отсутствующий файл или секция означают значения по умолчанию
func NewThresholdConfigFromYAML(path string) (config.ThresholdConfig, error) {
	cfg := &thresholdConfig{
		colorParity: defaultColorParityBounds,
		dozen:       defaultDozenBounds,
		diagonal:    defaultDiagonalBounds,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	parsed, err := parseThresholdConfig(data, cfg)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func parseThresholdConfig(data []byte, cfg *thresholdConfig) (*thresholdConfig, error) {
	var raw thresholdsFileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse thresholds: %w", err)
	}

	sections := []struct {
		name string
		src  *boundsYAML
		dst  *model.ThresholdBounds
	}{
		{"color_parity", raw.Thresholds.ColorParity, &cfg.colorParity},
		{"dozen", raw.Thresholds.Dozen, &cfg.dozen},
		{"diagonal", raw.Thresholds.Diagonal, &cfg.diagonal},
	}
	for _, s := range sections {
		if s.src == nil {
			continue
		}
		b := model.ThresholdBounds{Min: s.src.Min, Max: s.src.Max, Default: s.src.Default}
		if b.Min < 1 || b.Min > b.Max || b.Default < b.Min || b.Default > b.Max {
			return nil, fmt.Errorf("thresholds.%s: need 1 <= min <= default <= max, got %d/%d/%d", s.name, b.Min, b.Default, b.Max)
		}
		*s.dst = b
	}

	return cfg, nil
}

func (cfg *thresholdConfig) ColorParity() model.ThresholdBounds {
	return cfg.colorParity
}

func (cfg *thresholdConfig) Dozen() model.ThresholdBounds {
	return cfg.dozen
}

func (cfg *thresholdConfig) Diagonal() model.ThresholdBounds {
	return cfg.diagonal
}

func (cfg *thresholdConfig) Defaults() model.Thresholds {
	return model.Thresholds{
		ColorParity: cfg.colorParity.Default,
		Dozen:       cfg.dozen.Default,
		Diagonal:    cfg.diagonal.Default,
	}
}
