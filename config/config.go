// Package config loads tabgrid settings from YAML files and the environment.
//
// Settings start from a named preset, are overlaid with the fields present
// in a YAML file, and finally with TABGRID_* environment variables:
//
//	preset: tight
//	tables:
//	  table_gap_threshold: 40
//	lookup:
//	  header_keywords: [calorie, fat, sodium]
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/tabgrid/lookup"
	"github.com/tsawler/tabgrid/tables"
)

// ErrUnknownPreset is returned for a preset name that is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Settings bundles the parameters of both reconstruction paths.
type Settings struct {
	Preset string        `yaml:"preset" json:"preset"`
	Tables tables.Config `yaml:"tables" json:"tables"`
	Lookup lookup.Config `yaml:"lookup" json:"lookup"`
}

// Default returns the "default" preset.
func Default() Settings {
	return Settings{
		Preset: "default",
		Tables: tables.DefaultConfig(),
		Lookup: lookup.DefaultConfig(),
	}
}

var presets = map[string]func(*Settings){
	"default": func(*Settings) {},
	// Tightly typeset documents where adjacent rows sit close together.
	"tight": func(s *Settings) {
		s.Tables.YTolerance = 2.5
	},
	// Scans and OCR output with uneven baselines.
	"loose": func(s *Settings) {
		s.Tables.YTolerance = 5
	},
}

// Preset returns the settings registered under name.
func Preset(name string) (Settings, error) {
	apply, ok := presets[name]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(Presets(), ", "))
	}
	s := Default()
	s.Preset = name
	apply(&s)
	return s, nil
}

// Presets lists the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a YAML settings file. Fields absent from the file keep the
// values of the preset the file names, or of the default preset.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML settings over their preset and validates the result.
func Parse(b []byte) (Settings, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(b, &head); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}

	s := Default()
	if head.Preset != "" {
		var err error
		if s, err = Preset(head.Preset); err != nil {
			return Settings{}, err
		}
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks both configurations.
func (s Settings) Validate() error {
	if err := s.Tables.Validate(); err != nil {
		return err
	}
	return s.Lookup.Validate()
}

// Resolve builds the effective settings: the file at path when given, the
// default preset otherwise, with environment overrides applied last.
func Resolve(path string) (Settings, error) {
	s := Default()
	if name := getEnv("TABGRID_PRESET", ""); name != "" {
		var err error
		if s, err = Preset(name); err != nil {
			return Settings{}, err
		}
	}
	if path != "" {
		var err error
		if s, err = Load(path); err != nil {
			return Settings{}, err
		}
	}
	s = ApplyEnv(s)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ApplyEnv overrides s with any TABGRID_* variables that are set and parse.
func ApplyEnv(s Settings) Settings {
	t := &s.Tables
	t.YTolerance = getEnvAsFloat("TABGRID_Y_TOLERANCE", t.YTolerance)
	t.XTolerance = getEnvAsFloat("TABGRID_X_TOLERANCE", t.XTolerance)
	t.TableGapThreshold = getEnvAsFloat("TABGRID_GAP_THRESHOLD", t.TableGapThreshold)
	t.MinTableRows = getEnvAsInt("TABGRID_MIN_TABLE_ROWS", t.MinTableRows)
	t.MinColumns = getEnvAsInt("TABGRID_MIN_COLUMNS", t.MinColumns)
	t.ColumnStrategy = getEnv("TABGRID_COLUMN_STRATEGY", t.ColumnStrategy)
	t.HeaderStrategy = getEnv("TABGRID_HEADER_STRATEGY", t.HeaderStrategy)

	l := &s.Lookup
	l.XTolerance = getEnvAsFloat("TABGRID_LOOKUP_X_TOLERANCE", l.XTolerance)
	l.YTolerance = getEnvAsFloat("TABGRID_LOOKUP_Y_TOLERANCE", l.YTolerance)
	l.HeaderKeywords = getEnvAsList("TABGRID_HEADER_KEYWORDS", l.HeaderKeywords)
	l.SectionKeywords = getEnvAsList("TABGRID_SECTION_KEYWORDS", l.SectionKeywords)
	return s
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
