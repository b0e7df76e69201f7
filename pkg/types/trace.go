package types

// TraceKind classifies a backward verification step.
type TraceKind string

const (
	// TraceOK is emitted when a goal is already a known fact.
	TraceOK TraceKind = "OK"

	// TraceMissing is emitted when no fact and no rule can supply a goal.
	TraceMissing TraceKind = "MISSING"

	// TraceChecking is emitted before a candidate rule's conditions are evaluated.
	TraceChecking TraceKind = "CHECKING"

	// TraceSuccess is emitted when a candidate rule established its goal.
	TraceSuccess TraceKind = "SUCCESS"

	// TraceFail is emitted when every candidate rule for a goal failed.
	TraceFail TraceKind = "FAIL"

	// TraceCycle is emitted when a goal is reached again while it is still
	// being resolved. The branch is abandoned.
	TraceCycle TraceKind = "CYCLE"
)

// TraceEntry is one structured step of a backward verification.
// RuleID is only set for TraceChecking and TraceSuccess.
type TraceEntry struct {
	Depth  int       `json:"depth"`
	Kind   TraceKind `json:"kind"`
	Goal   string    `json:"goal"`
	RuleID string    `json:"ruleId,omitempty"`
}
