// Package locator models named UI element locators and parses them from the
// supported source file formats.
package locator

// Entry is one named locator. Expression is an opaque reference string; it is
// carried through verbatim and never interpreted.
type Entry struct {
	RawName    string `json:"raw_name"`
	Normalized string `json:"normalized_name"`
	Variable   string `json:"variable_name"`
	Expression string `json:"expression"`
}

// Registry maps normalized element names to locator entries. Insertion order
// is preserved: the partial matcher's tie-break is "first registered wins",
// so iteration order must be deterministic.
//
// Duplicate normalized names follow a last-write-wins contract: the entry is
// replaced but keeps its original position.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Add inserts an entry under its normalized name. Entries with an empty
// normalized name are ignored.
func (r *Registry) Add(e Entry) {
	if e.Normalized == "" {
		return
	}
	if _, exists := r.entries[e.Normalized]; !exists {
		r.order = append(r.order, e.Normalized)
	}
	r.entries[e.Normalized] = e
}

// Get returns the entry for a normalized name.
func (r *Registry) Get(normalized string) (Entry, bool) {
	e, ok := r.entries[normalized]
	return e, ok
}

// Keys returns the normalized names in insertion order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.order)
}
