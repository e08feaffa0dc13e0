// Package report runs one conversion from a result document to a JUnit XML file
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/QTest-hq/rtjunit/internal/config"
	"github.com/QTest-hq/rtjunit/internal/junit"
	"github.com/QTest-hq/rtjunit/internal/results"
)

// Summary describes a finished conversion
type Summary struct {
	Input  string
	Output string

	// Location is where the case list was found, empty when none was
	Location string

	Cases       int
	Tests       int
	Failures    int
	Errors      int
	Placeholder bool
}

// Discovery returns the one-line tally printed after a conversion
func (s *Summary) Discovery() string {
	return fmt.Sprintf("Cases discovered (strict): %d, failures=%d, errors=%d",
		s.Cases, s.Failures, s.Errors)
}

// Wrote returns the confirmation line printed after the file is written
func (s *Summary) Wrote() string {
	return fmt.Sprintf("Wrote JUnit: %s", s.Output)
}

// Run converts the result document at input into a JUnit XML file at output.
// The document is fully rendered before anything touches the output path.
func Run(cfg *config.Report, input, output string) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report config: %w", err)
	}

	doc, err := results.Load(input)
	if err != nil {
		return nil, err
	}

	res := junit.NewEmitter(cfg, results.Classify).Emit(doc.Cases)

	if err := Write(output, res.Document); err != nil {
		return nil, err
	}

	log.Debug().
		Str("input", input).
		Str("output", output).
		Int("bytes", len(res.Document)).
		Msg("report written")

	return &Summary{
		Input:       input,
		Output:      output,
		Location:    doc.Location,
		Cases:       len(doc.Cases),
		Tests:       res.Tests,
		Failures:    res.Failures,
		Errors:      res.Errors,
		Placeholder: res.Placeholder,
	}, nil
}

// Write stores document at path, creating missing parent directories and
// replacing any existing file
func Write(path, document string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
