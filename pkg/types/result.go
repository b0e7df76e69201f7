package types

// ForwardResult is the outcome of forward chaining over a fact set.
type ForwardResult struct {
	Fired   []Rule   `json:"firedRules"`
	Derived []string `json:"derivedFacts"`
	Rounds  int      `json:"rounds"`
}

// VerificationResult is the outcome of backward verification of one target.
type VerificationResult struct {
	Target  string       `json:"target"`
	Success bool         `json:"success"`
	Trace   []TraceEntry `json:"trace"`
}

// ScreeningResult summarises the backward verification of one conclusion
// during a screening run.
type ScreeningResult struct {
	Target   string   `json:"target"`
	Success  bool     `json:"success"`
	Steps    int      `json:"steps"`
	Advisory []string `json:"advisory,omitempty"`
}
