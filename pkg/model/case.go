// Package model defines the case records read from a red-team result document
// and the outcome each one is reported with.
package model

// Outcome is the reported result of a single case
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailure Outcome = "failure" // grading or assertion failure
	OutcomeError   Outcome = "error"   // infrastructure fault
)

// Case is the typed view of one case record. Every field of the source record
// is optional; absent strings decode to "".
type Case struct {
	// Index is the 0-based position in the discovered case list
	Index int

	PluginID     string
	StrategyID   string
	EncodingType string

	// Prompt is the first non-empty prompt candidate, unnormalized
	Prompt string

	// Success is true only when the record holds the boolean true
	Success bool

	// Pass is nil when gradingResult.pass is absent or not a boolean
	Pass   *bool
	Reason string

	// Output is response.output rendered as text; nil when absent, null, false, 0 or ""
	Output *string

	Error string
}

// Passed reports whether the case ran and was not graded as failing
func (c Case) Passed() bool {
	return c.Success && (c.Pass == nil || *c.Pass)
}

// HasError reports whether the record carried error text
func (c Case) HasError() bool {
	return c.Error != ""
}
