// Package render formats reasoning results for a terminal.
// The engine only emits structured records; all wording and styling lives here.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

// IndentWidth is the number of spaces per trace depth level.
const IndentWidth = 4

// Line returns the styled text of a single trace record, without indentation.
func Line(e types.TraceEntry, s Styles) string {
	switch e.Kind {
	case types.TraceOK:
		return s.OK.Render(fmt.Sprintf("[OK] Fact '%s' detected.", e.Goal))
	case types.TraceMissing:
		return s.Missing.Render(fmt.Sprintf("[MISSING] '%s' not found in symptoms.", e.Goal))
	case types.TraceChecking:
		return s.Checking.Render(fmt.Sprintf("Checking Rule %s for '%s'...", e.RuleID, e.Goal))
	case types.TraceSuccess:
		return s.Success.Render(fmt.Sprintf("[SUCCESS] Rule %s fired. '%s' confirmed.", e.RuleID, e.Goal))
	case types.TraceFail:
		return s.Fail.Render(fmt.Sprintf("[FAIL] Could not establish '%s'.", e.Goal))
	case types.TraceCycle:
		return s.Cycle.Render(fmt.Sprintf("[CYCLE] '%s' depends on itself, branch abandoned.", e.Goal))
	default:
		return fmt.Sprintf("[%s] '%s'", e.Kind, e.Goal)
	}
}

// Trace writes one indented line per trace record.
func Trace(w io.Writer, trace []types.TraceEntry, s Styles) error {
	for _, e := range trace {
		indent := strings.Repeat(" ", e.Depth*IndentWidth)
		if _, err := fmt.Fprintln(w, indent+Line(e, s)); err != nil {
			return err
		}
	}
	return nil
}

// Verification writes the verdict followed by the trace.
func Verification(w io.Writer, res types.VerificationResult, s Styles) error {
	verdict := s.Fail.Render(fmt.Sprintf("'%s' could not be verified.", Label(res.Target)))
	if res.Success {
		verdict = s.Success.Render(fmt.Sprintf("'%s' is verified.", Label(res.Target)))
	}
	if _, err := fmt.Fprintln(w, verdict); err != nil {
		return err
	}
	return Trace(w, res.Trace, s)
}

// Forward writes the fired rules with their advisories and the derived facts.
func Forward(w io.Writer, res types.ForwardResult, s Styles) error {
	var b strings.Builder

	b.WriteString(s.Heading.Render("Fired rules:") + "\n")
	if len(res.Fired) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, r := range res.Fired {
		b.WriteString("  " + r.String() + "\n")
		if r.Advisory != "" {
			b.WriteString("      " + s.Advisory.Render(r.Advisory) + "\n")
		}
	}

	b.WriteString(s.Heading.Render("Derived facts:") + " " + strings.Join(res.Derived, ", ") + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Screening writes one line per screened conclusion.
func Screening(w io.Writer, results []types.ScreeningResult, s Styles) error {
	for _, r := range results {
		line := s.Fail.Render("[--] " + Label(r.Target))
		if r.Success {
			line = s.Success.Render("[OK] " + Label(r.Target))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		for _, a := range r.Advisory {
			if _, err := fmt.Fprintln(w, "     "+s.Advisory.Render(a)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Label turns a snake_case fact name into a display label: "sore_throat" -> "Sore Throat".
func Label(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
