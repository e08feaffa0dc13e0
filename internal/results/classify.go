package results

import (
	"regexp"

	"github.com/QTest-hq/rtjunit/pkg/model"
	"github.com/rs/zerolog/log"
)

// infraPattern matches error text caused by the environment rather than the
// system under test: transport faults, timeouts, 5xx responses, rate limiting.
var infraPattern = regexp.MustCompile(
	`(?i)transport|timeout|network|5\d\d|rate limit|too many requests|etimedout|econnreset`,
)

// IsInfrastructureError reports whether error text points at an infrastructure fault
func IsInfrastructureError(text string) bool {
	return infraPattern.MatchString(text)
}

// Classify returns the outcome a case is reported with
func Classify(c model.Case) model.Outcome {
	outcome := model.OutcomeFailure
	switch {
	case c.Passed():
		outcome = model.OutcomePassed
	case IsInfrastructureError(c.Error):
		outcome = model.OutcomeError
	}

	log.Debug().
		Int("case", c.Index+1).
		Str("plugin", c.PluginID).
		Str("outcome", string(outcome)).
		Msg("case classified")

	return outcome
}
