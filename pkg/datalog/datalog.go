// Package datalog evaluates a rule catalog with the Mangle Datalog engine.
//
// Every rule becomes a Horn clause over a single unary predicate:
//
//	holds("flu") :- holds("fever"), holds("cough").
//
// The least fixpoint Mangle computes is the set of facts forward chaining
// must derive, which makes this package an independent check on the engine.
package datalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

// Predicate is the unary predicate every fact is expressed with.
const Predicate = "holds"

// RuleSource is anything that can list its rules in load order.
type RuleSource interface {
	Rules() []types.Rule
}

// Program renders the catalog and the initial facts as Mangle source.
func Program(src RuleSource, facts []string) string {
	var b strings.Builder

	sorted := append([]string(nil), facts...)
	sort.Strings(sorted)
	for _, f := range sorted {
		fmt.Fprintf(&b, "%s.\n", atom(f))
	}
	if len(sorted) > 0 {
		b.WriteString("\n")
	}

	for _, r := range src.Rules() {
		body := make([]string, len(r.Conditions))
		for i, c := range r.Conditions {
			body[i] = atom(c)
		}
		fmt.Fprintf(&b, "# %s\n%s :- %s.\n", r.ID, atom(r.Conclusion), strings.Join(body, ", "))
	}
	return b.String()
}

// Closure evaluates Program(src, facts) to its fixpoint and returns every
// fact that holds, sorted.
func Closure(src RuleSource, facts []string) ([]string, error) {
	unit, err := parse.Unit(strings.NewReader(Program(src, facts)))
	if err != nil {
		return nil, fmt.Errorf("parse program: %w", err)
	}

	programInfo, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("analyze program: %w", err)
	}

	store := factstore.NewSimpleInMemoryStore()
	if _, err := mengine.EvalProgramWithStats(programInfo, store); err != nil {
		return nil, fmt.Errorf("evaluate program: %w", err)
	}

	var out []string
	query := ast.NewQuery(ast.PredicateSym{Symbol: Predicate, Arity: 1})
	err = store.GetFacts(query, func(a ast.Atom) error {
		c, ok := a.Args[0].(ast.Constant)
		if !ok || c.Type != ast.StringType {
			return fmt.Errorf("unexpected %s argument %v", Predicate, a.Args[0])
		}
		out = append(out, c.Symbol)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read closure: %w", err)
	}

	sort.Strings(out)
	return out, nil
}

func atom(name string) string {
	return Predicate + "(" + quote(name) + ")"
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
