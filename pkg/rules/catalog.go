package rules

import (
	"sort"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

// Catalog is an ordered, read-only collection of rules. Load order is kept:
// it decides which candidate rule backward verification tries first.
//
// A Catalog is never mutated after NewCatalog returns, so it can be shared by
// any number of concurrent reasoning calls without locking.
type Catalog struct {
	rules       []types.Rule
	byGoal      map[string][]int
	observable  []string
	conclusions []string
}

// NewCatalog builds a catalog from rules in the given order.
// Duplicate ids are kept; each rule is evaluated on its own.
func NewCatalog(rs ...types.Rule) *Catalog {
	c := &Catalog{
		rules:  make([]types.Rule, len(rs)),
		byGoal: make(map[string][]int),
	}

	conditions := types.NewFactSet()
	conclusions := types.NewFactSet()
	for i, r := range rs {
		c.rules[i] = r.Clone()
		c.byGoal[r.Conclusion] = append(c.byGoal[r.Conclusion], i)
		conclusions.Add(r.Conclusion)
		for _, cond := range r.Conditions {
			conditions.Add(cond)
		}
	}

	for cond := range conditions {
		if !conclusions.Has(cond) {
			c.observable = append(c.observable, cond)
		}
	}
	sort.Strings(c.observable)
	c.conclusions = conclusions.Sorted()

	return c
}

// Len returns the number of rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Rule returns the rule at position i in load order.
func (c *Catalog) Rule(i int) types.Rule {
	return c.rules[i].Clone()
}

// Rules returns a copy of all rules in load order.
func (c *Catalog) Rules() []types.Rule {
	out := make([]types.Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Clone()
	}
	return out
}

// Candidates returns the positions of the rules concluding goal, in load order.
func (c *Catalog) Candidates(goal string) []int {
	return append([]int(nil), c.byGoal[goal]...)
}

// ObservableSymptoms returns, sorted, the conditions that no rule concludes.
// These have to be supplied by the user.
func (c *Catalog) ObservableSymptoms() []string {
	return append([]string{}, c.observable...)
}

// AllConclusions returns every rule conclusion, sorted.
func (c *Catalog) AllConclusions() []string {
	return append([]string{}, c.conclusions...)
}
