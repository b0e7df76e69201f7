package datalog

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/symptom-diagnoser/pkg/engine"
	"github.com/mrhapile/symptom-diagnoser/pkg/rules"
	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

func fluCatalog() *rules.Catalog {
	return rules.NewCatalog(
		types.Rule{ID: "R1", Conditions: []string{"fever", "cough"}, Conclusion: "flu", Advisory: "rest"},
		types.Rule{ID: "R2", Conditions: []string{"flu"}, Conclusion: "needs_isolation", Advisory: "isolate"},
	)
}

func TestProgram(t *testing.T) {
	got := Program(fluCatalog(), []string{"fever", "cough"})

	want := `holds("cough").
holds("fever").

# R1
holds("flu") :- holds("fever"), holds("cough").
# R2
holds("needs_isolation") :- holds("flu").
`
	assert.Equal(t, want, got)
}

func TestProgram_Quoting(t *testing.T) {
	cat := rules.NewCatalog(types.Rule{ID: "R1", Conditions: []string{`say "ah"`}, Conclusion: `back\slash`})
	got := Program(cat, nil)
	assert.Contains(t, got, `holds("back\\slash") :- holds("say \"ah\"").`)
}

func TestClosure(t *testing.T) {
	got, err := Closure(fluCatalog(), []string{"fever", "cough"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cough", "fever", "flu", "needs_isolation"}, got)
}

func TestClosure_NothingHolds(t *testing.T) {
	got, err := Closure(fluCatalog(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClosure_Cycle(t *testing.T) {
	cat := rules.NewCatalog(
		types.Rule{ID: "R1", Conditions: []string{"b"}, Conclusion: "a"},
		types.Rule{ID: "R2", Conditions: []string{"a"}, Conclusion: "b"},
		types.Rule{ID: "R3", Conditions: []string{"c"}, Conclusion: "b"},
	)
	got, err := Closure(cat, []string{"c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func randomCatalog(encoded []int) *rules.Catalog {
	name := func(n int) string { return fmt.Sprintf("f%d", n%6) }

	rs := make([]types.Rule, len(encoded))
	for i, v := range encoded {
		n := 1 + v%2
		v /= 2
		conds := make([]string, n)
		for j := range conds {
			conds[j] = name(v)
			v /= 6
		}
		rs[i] = types.Rule{ID: fmt.Sprintf("R%d", i+1), Conditions: conds, Conclusion: name(v)}
	}
	return rules.NewCatalog(rs...)
}

// TestClosureMatchesForward checks the Datalog fixpoint against forward chaining.
func TestClosureMatchesForward(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.MaxSize = 10
	properties := gopter.NewProperties(parameters)

	properties.Property("datalog closure == forward closure", prop.ForAll(
		func(encoded []int, initial []int) bool {
			cat := randomCatalog(encoded)
			facts := make([]string, len(initial))
			for i, v := range initial {
				facts[i] = fmt.Sprintf("f%d", v)
			}

			fwd, err := engine.Forward(cat, facts)
			if err != nil {
				return false
			}
			closure, err := Closure(cat, facts)
			if err != nil {
				return false
			}
			return assert.ObjectsAreEqual(fwd.Derived, closure) ||
				(len(fwd.Derived) == 0 && len(closure) == 0)
		},
		gen.SliceOf(gen.IntRange(0, 2*6*6*6-1)),
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.TestingRun(t)
}
