package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Defaults shared with the component package.
const (
	DefaultMissingMessage = "No value found for the provided key"
	DefaultNullTypeName   = "null"
)

// Settings is the full configuration.
type Settings struct {
	Expire        ExpireSettings        `yaml:"expire" json:"expire"`
	Getter        GetterSettings        `yaml:"getter" json:"getter"`
	Viewer        ViewerSettings        `yaml:"viewer" json:"viewer"`
	NullTypeName  string                `yaml:"null_type_name" json:"null_type_name"`
	Observability ObservabilitySettings `yaml:"observability" json:"observability"`
}

// ExpireSettings lists, per change kind, the component kinds to expire.
type ExpireSettings struct {
	OnSet    []string `yaml:"on_set" json:"on_set"`
	OnRemove []string `yaml:"on_remove" json:"on_remove"`
	OnClear  []string `yaml:"on_clear" json:"on_clear"`
}

// GetterSettings configures Getter output.
type GetterSettings struct {
	MissingMessage string `yaml:"missing_message" json:"missing_message"`
}

// ViewerSettings configures Viewer output.
type ViewerSettings struct {
	IncludeSchemas bool `yaml:"include_schemas" json:"include_schemas"`
}

// ObservabilitySettings toggles logging, metrics, and tracing.
type ObservabilitySettings struct {
	Metrics  bool   `yaml:"metrics" json:"metrics"`
	Tracing  bool   `yaml:"tracing" json:"tracing"`
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Expire: ExpireSettings{
			OnSet:    []string{"getter", "viewer"},
			OnRemove: []string{"getter", "viewer"},
			OnClear:  []string{"getter", "viewer"},
		},
		Getter:       GetterSettings{MissingMessage: DefaultMissingMessage},
		NullTypeName: DefaultNullTypeName,
		Observability: ObservabilitySettings{
			LogLevel: "info",
		},
	}
}

// Validate reports every problem found, joined.
func (s Settings) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Getter.MissingMessage) == "" {
		errs = append(errs, errors.New("getter.missing_message must not be empty"))
	}
	if strings.TrimSpace(s.NullTypeName) == "" {
		errs = append(errs, errors.New("null_type_name must not be empty"))
	}
	if _, err := s.Level(); err != nil {
		errs = append(errs, err)
	}
	for name, kinds := range map[string][]string{
		"expire.on_set":    s.Expire.OnSet,
		"expire.on_remove": s.Expire.OnRemove,
		"expire.on_clear":  s.Expire.OnClear,
	} {
		if slices.Contains(kinds, "") {
			errs = append(errs, fmt.Errorf("%s contains an empty kind", name))
		}
	}

	return errors.Join(errs...)
}

// Level parses Observability.LogLevel. Empty means info.
func (s Settings) Level() (slog.Level, error) {
	var level slog.Level
	if s.Observability.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s.Observability.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("observability.log_level: %w", err)
	}
	return level, nil
}
