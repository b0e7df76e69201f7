package types

import "strings"

// Rule is a production rule: when every condition holds, the conclusion holds.
// Rules are treated as immutable once they are part of a catalog.
type Rule struct {
	ID         string   `json:"id"`
	Conditions []string `json:"conditions"`
	Conclusion string   `json:"conclusion"`
	Advisory   string   `json:"advisory"`
}

// Clone returns a copy that shares no memory with r.
func (r Rule) Clone() Rule {
	r.Conditions = append([]string(nil), r.Conditions...)
	return r
}

func (r Rule) String() string {
	return r.ID + ": " + strings.Join(r.Conditions, " + ") + " -> " + r.Conclusion
}
