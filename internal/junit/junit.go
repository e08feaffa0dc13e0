// Package junit renders classified red-team cases as a JUnit XML test suite
package junit

import (
	"fmt"
	"strings"
	"time"

	"github.com/QTest-hq/rtjunit/internal/config"
	"github.com/QTest-hq/rtjunit/pkg/model"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// ClassifyFunc decides the outcome a case is reported with
type ClassifyFunc func(model.Case) model.Outcome

// Result is a rendered suite and the tallies taken while rendering it
type Result struct {
	Document string

	Tests       int
	Failures    int
	Errors      int
	Placeholder bool
}

// Emitter builds JUnit XML documents
type Emitter struct {
	cfg      *config.Report
	classify ClassifyFunc
	now      func() time.Time
}

// NewEmitter creates an emitter that classifies cases with classify
func NewEmitter(cfg *config.Report, classify ClassifyFunc) *Emitter {
	return &Emitter{
		cfg:      cfg,
		classify: classify,
		now:      time.Now,
	}
}

// Emit renders the complete document for cases. An empty list renders a
// single skipped placeholder so the suite is never empty. Elements are
// concatenated without whitespace; only the document ends with a newline.
func (e *Emitter) Emit(cases []model.Case) *Result {
	res := &Result{Tests: len(cases)}

	var body strings.Builder
	for _, c := range cases {
		outcome := e.classify(c)
		switch outcome {
		case model.OutcomeFailure:
			res.Failures++
		case model.OutcomeError:
			res.Errors++
		}
		body.WriteString(e.emitCase(c, outcome))
	}

	if len(cases) == 0 {
		res.Tests = 1
		res.Placeholder = true
		body.WriteString(e.emitPlaceholder())
	}

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	sb.WriteString(fmt.Sprintf("<testsuite name=\"%s\" tests=\"%d\" failures=\"%d\" errors=\"%d\" time=\"0\" timestamp=\"%s\">",
		Escape(e.cfg.SuiteName), res.Tests, res.Failures, res.Errors,
		Escape(e.now().UTC().Format(timestampLayout))))
	sb.WriteString(body.String())
	sb.WriteString("</testsuite>\n")

	res.Document = sb.String()
	return res
}

func (e *Emitter) emitCase(c model.Case, outcome model.Outcome) string {
	open := fmt.Sprintf("<testcase name=\"%s\" classname=\"%s\" time=\"0\"",
		Escape(e.CaseName(c)), Escape(e.Classname(c)))

	var tag, kind string
	switch outcome {
	case model.OutcomeFailure:
		tag, kind = "failure", "AssertionFailure"
	case model.OutcomeError:
		tag, kind = "error", "InfrastructureError"
	default:
		return open + "/>"
	}

	// The problem element is never self-closed, even with an empty body
	return fmt.Sprintf("%s><%s type=\"%s\" message=\"%s\">%s</%s></testcase>",
		open, tag, kind, Escape(e.Message(c)), Escape(e.Details(c)), tag)
}

func (e *Emitter) emitPlaceholder() string {
	return fmt.Sprintf("<testcase name=\"%s\" classname=\"%s\" time=\"0\"><skipped message=\"No cases found\"/></testcase>",
		Escape(e.cfg.PlaceholderName), Escape(e.cfg.SuiteName))
}

// CaseName joins the raw plugin id, strategy, encoding and prompt excerpt,
// falling back to the 1-based position when all of them are empty
func (e *Emitter) CaseName(c model.Case) string {
	candidates := []string{c.PluginID, c.StrategyID, c.EncodingType, excerpt(c.Prompt, e.cfg.PromptExcerpt)}

	parts := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 0 {
		return fmt.Sprintf("case-%d", c.Index+1)
	}
	return strings.Join(parts, " ")
}

// Classname derives the sanitized classname; unlike CaseName it defaults a missing plugin id
func (e *Emitter) Classname(c model.Case) string {
	plugin := c.PluginID
	if plugin == "" {
		plugin = e.cfg.DefaultPlugin
	}
	return e.cfg.ClassPrefix + SanitizeClassname(plugin)
}

// Message returns the unescaped message attribute of a non-passing case
func (e *Emitter) Message(c model.Case) string {
	msg := c.Error
	if msg == "" {
		msg = "Assertion failed"
	}
	return Truncate(msg, e.cfg.MessageLimit)
}

// Details returns the unescaped body of a non-passing case
func (e *Emitter) Details(c model.Case) string {
	var sections []string

	if c.Reason != "" {
		sections = append(sections, "Reason:\n"+c.Reason)
	}
	if c.Output != nil && *c.Output != "" {
		sections = append(sections, "Output:\n"+Truncate(*c.Output, e.cfg.BodyLimit))
	}
	if c.Error != "" {
		sections = append(sections, "Error:\n"+Truncate(c.Error, e.cfg.BodyLimit))
	}

	return strings.Join(sections, "\n\n")
}
