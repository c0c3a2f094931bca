package logger

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/philipp01105/disco/core"
	"github.com/philipp01105/disco/formatter"
	"github.com/philipp01105/disco/painter"
	"github.com/philipp01105/disco/theme"
)

// Config is the render configuration a Logger is built from. It is
// copied at construction and never changes afterwards.
type Config struct {
	// Level is the minimum severity rendered; OffLevel renders nothing
	Level core.Level
	// Format lays out each record (Simple, JSON or a custom Func)
	Format formatter.Formatter
	// Color selects the colouring strategy
	Color painter.ColorFormat
	// Theme supplies the palettes
	Theme theme.Theme
	// UseStderr sends Warn and Error to stderr instead of stdout
	UseStderr bool
}

// DefaultConfig returns Info, simple text, solid colours, the spectral
// theme and warnings split onto stderr
func DefaultConfig() Config {
	return Config{
		Level:     core.InfoLevel,
		Format:    formatter.NewTextFormatter(formatter.Config{}),
		Color:     painter.Solid(),
		Theme:     theme.Spectral{},
		UseStderr: true,
	}
}

// fileConfig is the on-disk shape of Config
type fileConfig struct {
	Level           string              `mapstructure:"level"`
	RecordFormat    string              `mapstructure:"record_format"`
	TimestampFormat string              `mapstructure:"timestamp_format"`
	ColorFormat     string              `mapstructure:"color_format"`
	Steps           int                 `mapstructure:"steps"`
	Theme           string              `mapstructure:"theme"`
	Palette         map[string][]string `mapstructure:"palette"`
	UseStderr       bool                `mapstructure:"use_stderr"`
}

// envPrefix is the prefix for environment overrides, e.g. DISCO_LEVEL
const envPrefix = "DISCO"

func setDefaults(v *viper.Viper) {
	v.SetDefault("level", "info")
	v.SetDefault("record_format", "simple")
	v.SetDefault("timestamp_format", "")
	v.SetDefault("color_format", "solid")
	v.SetDefault("steps", 20)
	v.SetDefault("theme", "spectral")
	v.SetDefault("use_stderr", true)
}

// LoadConfig reads a Config from a file (any format viper understands)
// with DISCO_* environment variables taking precedence
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ConfigFromViper(v)
}

// ConfigFromViper builds a Config from an existing viper instance. Keys
// that are not set fall back to DefaultConfig values.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	setDefaults(v)

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return fc.toConfig()
}

func (fc fileConfig) toConfig() (Config, error) {
	level, err := core.ParseLevel(fc.Level)
	if err != nil {
		return Config{}, fmt.Errorf("level: %w", err)
	}

	var f formatter.Formatter
	fcfg := formatter.Config{TimestampFormat: fc.TimestampFormat}
	switch strings.ToLower(fc.RecordFormat) {
	case "", "simple", "text":
		f = formatter.NewTextFormatter(fcfg)
	case "json":
		f = formatter.NewJSONFormatter(fcfg)
	default:
		return Config{}, fmt.Errorf("record_format: unknown format %q", fc.RecordFormat)
	}

	color, err := painter.ParseColorFormat(fc.ColorFormat, fc.Steps)
	if err != nil {
		return Config{}, fmt.Errorf("color_format: %w", err)
	}

	var th theme.Theme
	if len(fc.Palette) > 0 {
		p, err := theme.ParsePalette(fc.Palette)
		if err != nil {
			return Config{}, fmt.Errorf("palette: %w", err)
		}
		th = p
	} else if th, err = theme.Lookup(fc.Theme); err != nil {
		return Config{}, fmt.Errorf("theme: %w", err)
	}

	return Config{
		Level:     level,
		Format:    f,
		Color:     color,
		Theme:     th,
		UseStderr: fc.UseStderr,
	}, nil
}
