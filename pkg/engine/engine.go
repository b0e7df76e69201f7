package engine

import (
	"errors"
	"reflect"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

var (
	// ErrNilCatalog is returned when a reasoning function gets no catalog.
	ErrNilCatalog = errors.New("nil rule catalog")

	// ErrInvalidArgument marks a call the caller must not make, such as
	// verifying an empty target.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Forward derives every fact reachable from initial by repeatedly applying
// the catalog's rules until a full round adds nothing new.
// It is a pure function that:
//   - Never mutates the catalog or initial
//   - Never performs I/O
//   - Produces deterministic, repeatable output
//
// Within a round rules are tried in catalog order. A rule fires at most once,
// including when its conclusion was already known through another rule.
func Forward(cat Catalog, initial []string) (types.ForwardResult, error) {
	if isNil(cat) {
		return types.ForwardResult{}, ErrNilCatalog
	}

	facts := types.NewFactSet(initial...)
	fired := make([]bool, cat.Len())
	result := types.ForwardResult{Fired: []types.Rule{}}

	for {
		result.Rounds++
		grew := false

		for i := range fired {
			if fired[i] {
				continue
			}
			rule := cat.Rule(i)
			if !facts.HasAll(rule.Conditions) {
				continue
			}
			if facts.Add(rule.Conclusion) {
				grew = true
			}
			fired[i] = true
			result.Fired = append(result.Fired, rule)
		}

		if !grew {
			break
		}
	}

	result.Derived = facts.Sorted()
	return result, nil
}

// isNil also catches a nil pointer stored in a non-nil Catalog interface.
func isNil(cat Catalog) bool {
	if cat == nil {
		return true
	}
	v := reflect.ValueOf(cat)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}
