package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"obj-setup/internal/layout"
	"obj-setup/internal/logging"
	"obj-setup/internal/material"
	"obj-setup/internal/mathutil"
	"obj-setup/internal/texture"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config holds all configurable paths and pipeline settings.
type Config struct {
	// Paths
	FolderPath   string `yaml:"folder_path"`
	ManifestPath string `yaml:"manifest_path"`
	MetricsPath  string `yaml:"metrics_path"`

	// Material graph
	UseBump      bool    `yaml:"use_bump"`
	BumpStrength float64 `yaml:"bump_strength" validate:"gte=0,lte=1000"`

	// Placement
	Margin   float64 `yaml:"margin" validate:"gte=0"`
	Axis     string  `yaml:"axis" validate:"oneof=x y z X Y Z"`
	SourceUp string  `yaml:"source_up" validate:"oneof=x y z X Y Z"`

	// Texture matching
	ClaimPolicy   string `yaml:"claim_policy" validate:"oneof=longest shared"`
	ProbeTextures bool   `yaml:"probe_textures"`

	Log logging.Config `yaml:"log"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		BumpStrength: material.DefaultBumpStrength,
		Margin:       layout.DefaultMargin,
		Axis:         "x",
		SourceUp:     "z",
		ClaimPolicy:  "longest",
		Log:          logging.Config{Level: "info", Format: "console"},
	}
}

// Load reads a YAML config file on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Pointer fields distinguish "not given" from the zero value.
type Flags struct {
	FolderPath   string
	ManifestPath string
	MetricsPath  string
	UseBump      *bool
	BumpStrength *float64
	Margin       *float64
	Axis         string
	SourceUp     string
	ClaimPolicy  string
	Probe        *bool
	LogLevel     string
}

// Resolve applies flag overrides and fills empty fields with defaults.
// Relative output paths are resolved against the folder being scanned.
func (c *Config) Resolve(flags Flags) {
	if flags.FolderPath != "" {
		c.FolderPath = flags.FolderPath
	}
	if flags.ManifestPath != "" {
		c.ManifestPath = flags.ManifestPath
	}
	if flags.MetricsPath != "" {
		c.MetricsPath = flags.MetricsPath
	}
	if flags.UseBump != nil {
		c.UseBump = *flags.UseBump
	}
	if flags.BumpStrength != nil {
		c.BumpStrength = *flags.BumpStrength
	}
	if flags.Margin != nil {
		c.Margin = *flags.Margin
	}
	if flags.Axis != "" {
		c.Axis = flags.Axis
	}
	if flags.SourceUp != "" {
		c.SourceUp = flags.SourceUp
	}
	if flags.ClaimPolicy != "" {
		c.ClaimPolicy = flags.ClaimPolicy
	}
	if flags.Probe != nil {
		c.ProbeTextures = *flags.Probe
	}
	if flags.LogLevel != "" {
		c.Log.Level = flags.LogLevel
	}

	if c.Axis == "" {
		c.Axis = "x"
	}
	if c.SourceUp == "" {
		c.SourceUp = "z"
	}
	if c.ClaimPolicy == "" {
		c.ClaimPolicy = "longest"
	}

	if c.FolderPath != "" {
		c.ManifestPath = resolveAgainst(c.FolderPath, c.ManifestPath)
		c.MetricsPath = resolveAgainst(c.FolderPath, c.MetricsPath)
	}
}

func resolveAgainst(folder, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if info, err := os.Stat(folder); err == nil && !info.IsDir() {
		folder = filepath.Dir(folder)
	}
	return filepath.Join(folder, p)
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if c.FolderPath == "" {
		return fmt.Errorf("%w: folder_path is required", ErrInvalid)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// MaterialOptions returns the graph builder settings.
func (c Config) MaterialOptions() material.Options {
	return material.Options{UseBump: c.UseBump, BumpStrength: c.BumpStrength}
}

// LayoutAxis returns the parsed layout axis (x when unparseable).
func (c Config) LayoutAxis() mathutil.Axis {
	a, _ := mathutil.ParseAxis(c.Axis)
	return a
}

// SourceUpAxis returns the parsed model up axis (z when unparseable).
func (c Config) SourceUpAxis() mathutil.Axis {
	if a, ok := mathutil.ParseAxis(c.SourceUp); ok {
		return a
	}
	return mathutil.AxisZ
}

// Claim returns the parsed texture claim policy.
func (c Config) Claim() texture.ClaimPolicy {
	p, _ := texture.ParseClaimPolicy(c.ClaimPolicy)
	return p
}
