package engine

import (
	"fmt"
	"strings"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

// Verify tries to justify target from initial by goal-driven search over
// the catalog and records every step it takes.
//
// Candidate rules for a goal are tried in catalog order and the first one
// whose conditions all resolve wins; the remaining candidates are not
// explored. Established goals are remembered for the rest of the call.
// A goal met again while it is still being resolved fails that branch with
// a CYCLE record, so cyclic catalogs terminate.
//
// An unresolvable target is a normal negative result, not an error.
func Verify(cat Catalog, target string, initial []string) (types.VerificationResult, error) {
	res, _, err := verify(cat, target, initial)
	return res, err
}

// verify runs Verify and also returns the catalog positions of the rules in
// the derivation that established target, conditions before conclusions.
// The positions are empty when the target was not established by a rule.
func verify(cat Catalog, target string, initial []string) (types.VerificationResult, []int, error) {
	if isNil(cat) {
		return types.VerificationResult{}, nil, ErrNilCatalog
	}
	if strings.TrimSpace(target) == "" {
		return types.VerificationResult{}, nil, fmt.Errorf("%w: empty target", ErrInvalidArgument)
	}

	v := &verifier{
		cat:      cat,
		known:    types.NewFactSet(initial...),
		active:   types.NewFactSet(),
		provedBy: make(map[string]int),
		trace:    []types.TraceEntry{},
	}
	ok := v.resolve(target, 0)

	var used []int
	if ok {
		used = v.derivation(target, types.NewFactSet(), nil)
	}

	return types.VerificationResult{
		Target:  target,
		Success: ok,
		Trace:   v.trace,
	}, used, nil
}

type verifier struct {
	cat      Catalog
	known    types.FactSet
	active   types.FactSet  // goals on the current resolution path
	provedBy map[string]int // goal -> catalog position of the rule that established it
	trace    []types.TraceEntry
}

func (v *verifier) emit(depth int, kind types.TraceKind, goal, ruleID string) {
	v.trace = append(v.trace, types.TraceEntry{
		Depth:  depth,
		Kind:   kind,
		Goal:   goal,
		RuleID: ruleID,
	})
}

func (v *verifier) resolve(goal string, depth int) bool {
	if v.known.Has(goal) {
		v.emit(depth, types.TraceOK, goal, "")
		return true
	}

	if v.active.Has(goal) {
		v.emit(depth, types.TraceCycle, goal, "")
		return false
	}

	candidates := v.cat.Candidates(goal)
	if len(candidates) == 0 {
		v.emit(depth, types.TraceMissing, goal, "")
		return false
	}

	v.active.Add(goal)
	defer delete(v.active, goal)

	for _, i := range candidates {
		rule := v.cat.Rule(i)
		v.emit(depth, types.TraceChecking, goal, rule.ID)

		if v.satisfied(rule, depth+1) {
			v.emit(depth, types.TraceSuccess, goal, rule.ID)
			v.known.Add(goal)
			v.provedBy[goal] = i
			return true
		}
	}

	v.emit(depth, types.TraceFail, goal, "")
	return false
}

// satisfied resolves the rule's conditions in order, stopping at the first failure.
func (v *verifier) satisfied(rule types.Rule, depth int) bool {
	for _, cond := range rule.Conditions {
		if !v.resolve(cond, depth) {
			return false
		}
	}
	return true
}

// derivation walks the rules that established goal back to the initial facts.
// Goals established inside an abandoned candidate only appear when the
// winning derivation reuses them.
func (v *verifier) derivation(goal string, seen types.FactSet, out []int) []int {
	pos, ok := v.provedBy[goal]
	if !ok || !seen.Add(goal) {
		return out
	}
	for _, cond := range v.cat.Rule(pos).Conditions {
		out = v.derivation(cond, seen, out)
	}
	return append(out, pos)
}
