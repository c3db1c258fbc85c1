package graph

// LabelRegistry maps node labels to dense indices and back.
// Indices are assigned in first-seen order starting at 0 and never reused.
type LabelRegistry struct {
	byLabel map[string]int
	labels  []string
}

// NewLabelRegistry creates an empty registry
func NewLabelRegistry() *LabelRegistry {
	return &LabelRegistry{
		byLabel: make(map[string]int),
		labels:  make([]string, 0),
	}
}

// Intern returns the index of label, assigning the next free index if the
// label has not been seen before.
func (r *LabelRegistry) Intern(label string) int {
	if idx, ok := r.byLabel[label]; ok {
		return idx
	}
	idx := len(r.labels)
	r.byLabel[label] = idx
	r.labels = append(r.labels, label)
	return idx
}

// Lookup returns the index of label. Matching is exact and case-sensitive.
func (r *LabelRegistry) Lookup(label string) (int, bool) {
	idx, ok := r.byLabel[label]
	return idx, ok
}

// Resolve looks up every label in order. It stops at the first unknown label
// and returns it.
func (r *LabelRegistry) Resolve(labels ...string) ([]int, string, bool) {
	indices := make([]int, 0, len(labels))
	for _, label := range labels {
		idx, ok := r.byLabel[label]
		if !ok {
			return nil, label, false
		}
		indices = append(indices, idx)
	}
	return indices, "", true
}

// Label returns the label registered for idx
func (r *LabelRegistry) Label(idx int) (string, bool) {
	if idx < 0 || idx >= len(r.labels) {
		return "", false
	}
	return r.labels[idx], true
}

// Labels returns a copy of all labels in index order
func (r *LabelRegistry) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Len returns the number of registered labels
func (r *LabelRegistry) Len() int {
	return len(r.labels)
}
