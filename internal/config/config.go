// Package config loads CLI settings from an optional file and the environment.
package config

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/settleplot-go/pkg/settleplot"
	"github.com/ukaji3/settleplot-go/pkg/settleplot/parser"
)

// EnvPrefix prefixes environment overrides, e.g. SETTLEPLOT_PAGE__WIDTH_IN.
const EnvPrefix = "SETTLEPLOT_"

// PageConfig sets the PDF page size.
type PageConfig struct {
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// ColorsConfig sets the series colours as #rrggbb.
type ColorsConfig struct {
	Height     string `json:"height"`
	Settlement string `json:"settlement"`
}

// Config holds the CLI settings: workbook discovery, output naming, date
// parsing and chart style.
type Config struct {
	Extension   string       `json:"extension"`
	Prefix      string       `json:"prefix"`
	DateLayout  string       `json:"date_layout"`
	LabelOffset float64      `json:"label_offset"`
	Page        PageConfig   `json:"page"`
	Colors      ColorsConfig `json:"colors"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Extension:   settleplot.DefaultExtension,
		Prefix:      settleplot.DefaultPrefix,
		DateLayout:  parser.DefaultDateLayout,
		LabelOffset: 1,
		Page:        PageConfig{WidthIn: 14, HeightIn: 7},
		Colors:      ColorsConfig{Height: "#0000ff", Settlement: "#ff0000"},
	}
}

// Load returns Default overlaid with the file at path (skipped when path is
// empty) and then with SETTLEPLOT_ environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var p koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			p = yaml.Parser()
		case ".json":
			p = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), p); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("extension is required")
	}
	if c.DateLayout == "" {
		return fmt.Errorf("date_layout is required")
	}
	if c.Page.WidthIn <= 0 || c.Page.HeightIn <= 0 {
		return fmt.Errorf("page size must be positive, got %vx%v", c.Page.WidthIn, c.Page.HeightIn)
	}
	if _, err := parseHexColor(c.Colors.Height); err != nil {
		return fmt.Errorf("colors.height: %w", err)
	}
	if _, err := parseHexColor(c.Colors.Settlement); err != nil {
		return fmt.Errorf("colors.settlement: %w", err)
	}
	return nil
}

// Options converts the configuration to plotting options.
func (c Config) Options() (settleplot.Options, error) {
	opts := settleplot.DefaultOptions()
	opts.Extension = c.Extension
	opts.Prefix = c.Prefix
	opts.DateLayout = c.DateLayout
	opts.Style.Width = vg.Length(c.Page.WidthIn) * vg.Inch
	opts.Style.Height = vg.Length(c.Page.HeightIn) * vg.Inch
	opts.Style.LabelOffset = c.LabelOffset

	var err error
	if opts.Style.HeightColor, err = parseHexColor(c.Colors.Height); err != nil {
		return opts, fmt.Errorf("colors.height: %w", err)
	}
	if opts.Style.SettlementColor, err = parseHexColor(c.Colors.Settlement); err != nil {
		return opts, fmt.Errorf("colors.settlement: %w", err)
	}
	return opts, nil
}

// parseHexColor parses "#rrggbb".
func parseHexColor(s string) (color.Color, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("invalid colour %q, want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("invalid colour %q: %v", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
