package config

import (
	"fmt"
)

// Report holds the naming and size settings used when rendering a report
type Report struct {
	// Suite
	SuiteName       string
	ClassPrefix     string
	PlaceholderName string

	// DefaultPlugin stands in for a missing pluginId in the classname only
	DefaultPlugin string

	// Limits, counted in characters
	PromptExcerpt int
	MessageLimit  int
	BodyLimit     int
}

// Default returns the settings CI dashboards expect from promptfoo red-team runs
func Default() *Report {
	return &Report{
		SuiteName:       "promptfoo.redteam",
		ClassPrefix:     "promptfoo.redteam.",
		PlaceholderName: "promptfoo.redteam.placeholder",
		DefaultPlugin:   "unknown",
		PromptExcerpt:   80,
		MessageLimit:    256,
		BodyLimit:       2000,
	}
}

// Validate checks that every setting is usable
func (r *Report) Validate() error {
	if r.SuiteName == "" {
		return fmt.Errorf("suite name required")
	}
	if r.DefaultPlugin == "" {
		return fmt.Errorf("default plugin required")
	}
	if r.PromptExcerpt <= 0 {
		return fmt.Errorf("prompt excerpt must be positive, got %d", r.PromptExcerpt)
	}
	if r.MessageLimit <= 0 {
		return fmt.Errorf("message limit must be positive, got %d", r.MessageLimit)
	}
	if r.BodyLimit <= 0 {
		return fmt.Errorf("body limit must be positive, got %d", r.BodyLimit)
	}

	return nil
}
