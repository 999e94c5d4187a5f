package keywords

// TermTable counts terms and remembers the order in which they were first seen.
type TermTable struct {
	terms  []string
	counts map[string]int
}

// NewTermTable returns an empty table.
func NewTermTable() *TermTable {
	return &TermTable{counts: make(map[string]int)}
}

// Add increments term by n.
func (t *TermTable) Add(term string, n int) {
	if _, seen := t.counts[term]; !seen {
		t.terms = append(t.terms, term)
	}
	t.counts[term] += n
}

// Count returns the occurrences of term.
func (t *TermTable) Count(term string) int {
	return t.counts[term]
}

// Len is the number of distinct terms.
func (t *TermTable) Len() int {
	return len(t.terms)
}

// Terms returns the distinct terms in first-seen order.
func (t *TermTable) Terms() []string {
	out := make([]string, len(t.terms))
	copy(out, t.terms)
	return out
}

// Merge adds every count of other into t. Terms new to t are appended in
// other's order.
func (t *TermTable) Merge(other *TermTable) {
	if other == nil {
		return
	}
	for _, term := range other.terms {
		t.Add(term, other.counts[term])
	}
}

// Map returns a plain term -> count copy.
func (t *TermTable) Map() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
