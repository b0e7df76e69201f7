package rules

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

// CSV header fields.
const (
	ColumnRuleID      = "rule_id"
	ColumnConditions  = "conditions"
	ColumnConclusion  = "conclusion"
	ColumnPrecautions = "precautions"
)

// ConditionSeparator joins condition names inside the conditions column.
const ConditionSeparator = ";"

var requiredColumns = []string{ColumnRuleID, ColumnConditions, ColumnConclusion, ColumnPrecautions}

// ParseCSV reads a catalog with the header rule_id,conditions,conclusion,precautions.
// Columns may appear in any order.
func ParseCSV(r io.Reader, opts ...LoadOption) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty catalog", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	b := newBuilder(opts)
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog record %d: %w", line, err)
		}

		field := func(name string) string {
			if i := index[name]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		rule := types.Rule{
			ID:         field(ColumnRuleID),
			Conclusion: field(ColumnConclusion),
			Advisory:   field(ColumnPrecautions),
		}
		if conds := field(ColumnConditions); conds != "" {
			rule.Conditions = strings.Split(conds, ConditionSeparator)
		}

		if err := b.add(line, rule); err != nil {
			return nil, err
		}
	}

	return b.catalog(), nil
}
