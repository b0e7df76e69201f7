package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

func TestTrace(t *testing.T) {
	trace := []types.TraceEntry{
		{Depth: 0, Kind: types.TraceChecking, Goal: "needs_isolation", RuleID: "R2"},
		{Depth: 1, Kind: types.TraceChecking, Goal: "flu", RuleID: "R1"},
		{Depth: 2, Kind: types.TraceOK, Goal: "fever"},
		{Depth: 2, Kind: types.TraceMissing, Goal: "cough"},
		{Depth: 1, Kind: types.TraceFail, Goal: "flu"},
		{Depth: 0, Kind: types.TraceFail, Goal: "needs_isolation"},
	}

	var buf bytes.Buffer
	if err := Trace(&buf, trace, Plain()); err != nil {
		t.Fatalf("Trace returned error: %v", err)
	}

	want := "Checking Rule R2 for 'needs_isolation'...\n" +
		"    Checking Rule R1 for 'flu'...\n" +
		"        [OK] Fact 'fever' detected.\n" +
		"        [MISSING] 'cough' not found in symptoms.\n" +
		"    [FAIL] Could not establish 'flu'.\n" +
		"[FAIL] Could not establish 'needs_isolation'.\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		entry types.TraceEntry
		want  string
	}{
		{types.TraceEntry{Kind: types.TraceSuccess, Goal: "flu", RuleID: "R1"}, "[SUCCESS] Rule R1 fired. 'flu' confirmed."},
		{types.TraceEntry{Kind: types.TraceCycle, Goal: "flu"}, "[CYCLE] 'flu' depends on itself, branch abandoned."},
		{types.TraceEntry{Kind: "ODD", Goal: "flu"}, "[ODD] 'flu'"},
	}

	for _, tt := range tests {
		if got := Line(tt.entry, Plain()); got != tt.want {
			t.Errorf("Line(%v) = '%s', want '%s'", tt.entry.Kind, got, tt.want)
		}
	}
}

func TestVerification(t *testing.T) {
	var buf bytes.Buffer
	res := types.VerificationResult{
		Target:  "needs_isolation",
		Success: true,
		Trace:   []types.TraceEntry{{Kind: types.TraceOK, Goal: "needs_isolation"}},
	}
	if err := Verification(&buf, res, Plain()); err != nil {
		t.Fatalf("Verification returned error: %v", err)
	}

	want := "'Needs Isolation' is verified.\n[OK] Fact 'needs_isolation' detected.\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("verification mismatch (-want +got):\n%s", diff)
	}
}

func TestForward(t *testing.T) {
	var buf bytes.Buffer
	res := types.ForwardResult{
		Fired: []types.Rule{
			{ID: "R1", Conditions: []string{"fever", "cough"}, Conclusion: "flu", Advisory: "rest"},
			{ID: "R2", Conditions: []string{"flu"}, Conclusion: "needs_isolation"},
		},
		Derived: []string{"cough", "fever", "flu", "needs_isolation"},
	}
	if err := Forward(&buf, res, Plain()); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}

	want := "Fired rules:\n" +
		"  R1: fever + cough -> flu\n" +
		"      rest\n" +
		"  R2: flu -> needs_isolation\n" +
		"Derived facts: cough, fever, flu, needs_isolation\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("forward mismatch (-want +got):\n%s", diff)
	}
}

func TestForward_NothingFired(t *testing.T) {
	var buf bytes.Buffer
	if err := Forward(&buf, types.ForwardResult{Derived: []string{"fever"}}, Plain()); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "(none)") {
		t.Errorf("Expected '(none)' in output, got '%s'", buf.String())
	}
}

func TestScreening(t *testing.T) {
	var buf bytes.Buffer
	results := []types.ScreeningResult{
		{Target: "flu", Success: true, Advisory: []string{"rest"}},
		{Target: "malaria"},
	}
	if err := Screening(&buf, results, Plain()); err != nil {
		t.Fatalf("Screening returned error: %v", err)
	}

	if diff := cmp.Diff("[OK] Flu\n     rest\n[--] Malaria\n", buf.String()); diff != "" {
		t.Errorf("screening mismatch (-want +got):\n%s", diff)
	}
}

func TestColoredKeepsText(t *testing.T) {
	line := Line(types.TraceEntry{Kind: types.TraceOK, Goal: "fever"}, Colored())
	if !strings.Contains(line, "[OK] Fact 'fever' detected.") {
		t.Errorf("Expected styled line to keep its text, got '%s'", line)
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"sore_throat": "Sore Throat",
		"fever":       "Fever",
		"él_niño":     "Él Niño",
		"a__b":        "A  B",
		"":            "",
	}

	for in, want := range tests {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = '%s', want '%s'", in, got, want)
		}
	}
}
