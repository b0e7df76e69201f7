package engine

import "github.com/mrhapile/symptom-diagnoser/pkg/types"

// Catalog is the read-only view of a rule catalog the reasoning functions need.
// Implementations must not change between calls; *rules.Catalog satisfies it.
type Catalog interface {
	// Len returns the number of rules.
	Len() int

	// Rule returns the rule at position i in load order.
	Rule(i int) types.Rule

	// Candidates returns the positions of the rules concluding goal, in load order.
	Candidates(goal string) []int
}

// conclusions returns the distinct conclusions of cat, sorted.
func conclusions(cat Catalog) []string {
	seen := types.NewFactSet()
	for i := 0; i < cat.Len(); i++ {
		seen.Add(cat.Rule(i).Conclusion)
	}
	return seen.Sorted()
}
