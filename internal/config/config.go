// Package config loads stripdemo settings from flags, environment and a TOML file via viper,
// and turns them into a strip configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"stripkit/internal/strip"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. STRIPDEMO_SHAPE=capsule.
	EnvPrefix = "STRIPDEMO"
	// ConfigName is the config file looked up in $HOME and the working directory.
	ConfigName = ".stripdemo"
	ConfigType = "toml"
)

// ErrInvalidSetting wraps every validation failure.
var ErrInvalidSetting = errors.New("invalid setting")

// DefaultSections are shown when no sections are configured.
var DefaultSections = []string{"Overview", "Layout", "Indicator", "Selection", "Scrolling", "Telemetry"}

// Settings is the decoded configuration.
type Settings struct {
	Style          string   `mapstructure:"style"`
	MaxVisible     int      `mapstructure:"max_visible"`
	Shape          string   `mapstructure:"shape"`
	CornerRadius   int      `mapstructure:"corner_radius"`
	Edge           string   `mapstructure:"edge"`
	Thickness      int      `mapstructure:"thickness"`
	IndicatorWidth int      `mapstructure:"indicator_width"`
	FullWidth      bool     `mapstructure:"full_width"`
	ContentPadding int      `mapstructure:"content_padding"`
	ItemPadding    int      `mapstructure:"item_padding"`
	Color          string   `mapstructure:"color"`
	Sections       []string `mapstructure:"sections"`
	StateDB        string   `mapstructure:"state_db"`
	LogFile        string   `mapstructure:"log_file"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("style", "fill")
	v.SetDefault("max_visible", 4)
	v.SetDefault("shape", "bar")
	v.SetDefault("corner_radius", 0)
	v.SetDefault("edge", "bottom")
	v.SetDefault("thickness", strip.DefaultThickness)
	v.SetDefault("indicator_width", 0)
	v.SetDefault("full_width", false)
	v.SetDefault("content_padding", 4)
	v.SetDefault("item_padding", strip.DefaultItemPadding)
	v.SetDefault("color", "205")
	v.SetDefault("sections", DefaultSections)
	v.SetDefault("state_db", "")
	v.SetDefault("log_file", "")
}

// RegisterFlags defines a flag for every setting on fs. Flag names use hyphens in place of
// the underscores of config keys.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("style", "fill", "layout style: fill or fit")
	fs.Int("max-visible", 4, "items that fit the width in fit style")
	fs.String("shape", "bar", "indicator shape: bar, box or capsule")
	fs.Int("corner-radius", 0, "box corner radius; above 0 draws rounded corners")
	fs.String("edge", "bottom", "bar edge: top or bottom")
	fs.Int("thickness", strip.DefaultThickness, "bar thickness in eighths of a row")
	fs.Int("indicator-width", 0, "fixed bar width in columns, 0 for the item width")
	fs.Bool("full-width", false, "track container bounds instead of content bounds")
	fs.Int("content-padding", 4, "horizontal inset of the strip")
	fs.Int("item-padding", strip.DefaultItemPadding, "padding on each side of an item")
	fs.String("color", "205", "indicator color (ANSI index or #hex)")
	fs.StringSlice("sections", DefaultSections, "section labels")
	fs.String("state-db", "", "sqlite file remembering the last section, empty disables")
	fs.String("log-file", "", "write logs to this file")
}

// BindFlags binds every flag of fs to its config key, so explicitly set flags win over the
// environment and the config file.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if bindErr := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); bindErr != nil && err == nil {
			err = fmt.Errorf("config: bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

// Load reads cfgFile, or .stripdemo.toml from $HOME or the working directory when cfgFile is
// empty, applies STRIPDEMO_* environment overrides and decodes the result. A missing
// default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (Settings, error) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType(ConfigType)
		v.SetConfigName(ConfigName)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	return s, nil
}

// ParseStyle parses "fill" or "fit"; maxVisible applies to fit.
func ParseStyle(name string, maxVisible int) (strip.LayoutStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fill":
		return strip.Fill(), nil
	case "fit":
		if maxVisible < 1 {
			return strip.LayoutStyle{}, fmt.Errorf("%w: max_visible must be at least 1, got %d", ErrInvalidSetting, maxVisible)
		}
		return strip.Fit(maxVisible), nil
	default:
		return strip.LayoutStyle{}, fmt.Errorf("%w: style %q (want fill or fit)", ErrInvalidSetting, name)
	}
}

// ParseShape parses "bar", "box" or "capsule".
func ParseShape(name string, cornerRadius int) (strip.IndicatorShape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bar":
		return strip.Bar(), nil
	case "box":
		return strip.Box(cornerRadius), nil
	case "capsule":
		return strip.Capsule(), nil
	default:
		return strip.IndicatorShape{}, fmt.Errorf("%w: shape %q (want bar, box or capsule)", ErrInvalidSetting, name)
	}
}

// ParseEdge parses "top" or "bottom".
func ParseEdge(name string) (strip.Edge, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bottom":
		return strip.EdgeBottom, nil
	case "top":
		return strip.EdgeTop, nil
	default:
		return 0, fmt.Errorf("%w: edge %q (want top or bottom)", ErrInvalidSetting, name)
	}
}

// StripConfig applies s on top of base.
func StripConfig[T any](s Settings, base strip.Config[T]) (strip.Config[T], error) {
	style, err := ParseStyle(s.Style, s.MaxVisible)
	if err != nil {
		return base, err
	}
	shape, err := ParseShape(s.Shape, s.CornerRadius)
	if err != nil {
		return base, err
	}
	edge, err := ParseEdge(s.Edge)
	if err != nil {
		return base, err
	}
	for name, n := range map[string]int{
		"thickness":       s.Thickness,
		"indicator_width": s.IndicatorWidth,
		"content_padding": s.ContentPadding,
		"item_padding":    s.ItemPadding,
		"corner_radius":   s.CornerRadius,
	} {
		if n < 0 {
			return base, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidSetting, name, n)
		}
	}

	cfg := base.
		WithLayoutStyle(style).
		WithIndicatorShape(shape).
		WithIndicatorEdge(edge).
		WithIndicatorThickness(s.Thickness).
		WithIndicatorWidth(s.IndicatorWidth).
		WithFullWidthIndicator(s.FullWidth).
		WithContentPadding(s.ContentPadding).
		WithItemPadding(s.ItemPadding)
	if s.Color != "" {
		cfg = cfg.WithIndicatorColor(lipgloss.Color(s.Color))
	}
	return cfg, nil
}
