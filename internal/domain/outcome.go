package domain

// OutcomeStatus distinguishes a computed result from "no tax applies" and
// from rejected input, all of which may carry a zero amount.
type OutcomeStatus string

const (
	OutcomeComputed      OutcomeStatus = "computed"
	OutcomeNotApplicable OutcomeStatus = "not_applicable"
	OutcomeInvalidInput  OutcomeStatus = "invalid_input"
)

// Outcome is returned next to an amount by the checked calculators.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

// Computed is the successful outcome.
func Computed() Outcome { return Outcome{Status: OutcomeComputed} }

// NotApplicable reports that no tax is due for the stated reason.
func NotApplicable(reason string) Outcome {
	return Outcome{Status: OutcomeNotApplicable, Reason: reason}
}

// InvalidInput reports rejected input.
func InvalidInput(reason string) Outcome {
	return Outcome{Status: OutcomeInvalidInput, Reason: reason}
}

// OK reports whether the amount was actually computed.
func (o Outcome) OK() bool { return o.Status == OutcomeComputed }
