package types

import "sort"

// FactSet is a set of fact names known to hold during one reasoning call.
// It only ever grows.
type FactSet map[string]struct{}

// NewFactSet builds a set from the given names.
func NewFactSet(names ...string) FactSet {
	fs := make(FactSet, len(names))
	for _, n := range names {
		fs[n] = struct{}{}
	}
	return fs
}

// Has reports whether name is in the set.
func (fs FactSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

// Add inserts name and reports whether it was new.
func (fs FactSet) Add(name string) bool {
	if fs.Has(name) {
		return false
	}
	fs[name] = struct{}{}
	return true
}

// HasAll reports whether every name is in the set.
func (fs FactSet) HasAll(names []string) bool {
	for _, n := range names {
		if !fs.Has(n) {
			return false
		}
	}
	return true
}

// Sorted returns the members in alphabetical order.
func (fs FactSet) Sorted() []string {
	out := make([]string, 0, len(fs))
	for n := range fs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
