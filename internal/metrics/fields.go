package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
	AttrStage    = "stage"
)

// Outcome values for AttrOutcome.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
