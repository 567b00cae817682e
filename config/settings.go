package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BEYOND531_MAXES_DEADLIFT
const EnvPrefix = "BEYOND531"

// Output formats understood by the export package
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Formats returns every supported output format
func Formats() []string {
	return []string{FormatText, FormatCSV, FormatJSON, FormatXLSX}
}

// Settings holds everything the CLI needs besides the rule table itself
type Settings struct {
	Maxes      OneRepMax      `mapstructure:"maxes"`
	Preset     string         `mapstructure:"preset"`
	PresetFile string         `mapstructure:"preset_file"`
	Strict     bool           `mapstructure:"strict"`
	Output     OutputSettings `mapstructure:"output"`
	Log        LogSettings    `mapstructure:"log"`
}

type OutputSettings struct {
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

// Load reads settings from an optional YAML file, then applies BEYOND531_*
// environment overrides. An empty path skips the file.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// every key needs a default so AutomaticEnv sees it during Unmarshal
	v.SetDefault("maxes.front_squat", 0.0)
	v.SetDefault("maxes.deadlift", 0.0)
	v.SetDefault("maxes.bench_press", 0.0)
	v.SetDefault("preset", "ramp")
	v.SetDefault("preset_file", "")
	v.SetDefault("strict", false)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.file", "")
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	s.Output.Format = strings.ToLower(strings.TrimSpace(s.Output.Format))
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &s, nil
}

func (s *Settings) validate() error {
	if s.Preset == "" && s.PresetFile == "" {
		return fmt.Errorf("preset or preset_file is required")
	}
	if !validFormat(s.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %s", s.Output.Format, strings.Join(Formats(), ", "))
	}
	if _, err := ParseLevel(s.Log.Level); err != nil {
		return err
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// ParseLevel maps a log level name to its slog level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", level, err)
	}
	return l, nil
}
