// Package settings loads tool-level settings (log location, chart defaults).
//
// Order of precedence (low -> high):
//  1. defaults (domain.DefaultSettings)
//  2. YAML file, if RADAR_SETTINGS is set
//  3. env (prefix RADAR_)
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/trexfeathers/WOPI/internal/domain"
)

const (
	EnvPrefix   = "RADAR_"
	EnvSettings = "RADAR_SETTINGS"
)

var (
	ErrLoadSettings    = errors.New("load settings failed")
	ErrInvalidSettings = errors.New("invalid settings")
)

type dto struct {
	LogDir        string   `koanf:"log_dir"`
	LogFile       string   `koanf:"log_file"`
	DefaultWidth  float64  `koanf:"default_width" validate:"omitempty,gt=0,lte=100"`
	DefaultHeight float64  `koanf:"default_height" validate:"omitempty,gt=0,lte=100"`
	DPI           int      `koanf:"dpi" validate:"omitempty,gte=30,lte=600"`
	Palette       []string `koanf:"palette" validate:"omitempty,dive,required"`
}

// Load reads settings from RADAR_SETTINGS (if set) and RADAR_* env vars.
func Load() (domain.Settings, error) {
	return LoadFrom(os.Getenv(EnvSettings))
}

// LoadFrom reads settings from path (optional) and RADAR_* env vars.
func LoadFrom(path string) (domain.Settings, error) {
	cfg := domain.DefaultSettings()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrLoadSettings, path, err)
		}
	}

	// RADAR_LOG_DIR -> log_dir; keys are flat so underscores are kept.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, fmt.Errorf("%w: env: %v", ErrLoadSettings, err)
	}

	var d dto
	if err := k.UnmarshalWithConf("", &d, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := validator.New().Struct(d); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	apply(&cfg, d)
	return cfg, nil
}

func apply(cfg *domain.Settings, d dto) {
	if strings.TrimSpace(d.LogDir) != "" {
		cfg.Log.Dir = d.LogDir
	}
	if strings.TrimSpace(d.LogFile) != "" {
		cfg.Log.File = d.LogFile
	}
	if d.DefaultWidth > 0 {
		cfg.Chart.Size.Width = d.DefaultWidth
	}
	if d.DefaultHeight > 0 {
		cfg.Chart.Size.Height = d.DefaultHeight
	}
	if d.DPI > 0 {
		cfg.Chart.DPI = d.DPI
	}
	if len(d.Palette) > 0 {
		cfg.Chart.Palette = d.Palette
	}
}
