package app

import (
	"errors"
	"strings"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestsPath is a manifest file or a directory of them. Empty means
	// the embedded catalogue.
	ManifestsPath string
	// Selectors name the types to report, either by key or by qualified
	// name. Without selectors every type is listed.
	Selectors []string
	Output    string

	LogFormat string
	LogLevel  string

	Verify          bool
	CheckInvariants bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return nil, errors.New("output must be 'text' or 'json'")
	}
	for _, sel := range cfg.Selectors {
		if strings.TrimSpace(sel) == "" {
			return nil, errors.New("type selectors cannot be empty")
		}
	}
	return &cfg, nil
}
