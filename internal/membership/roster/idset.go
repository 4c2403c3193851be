package roster

import "slices"

// IDSet is a set of user ids.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids, ignoring empty strings.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s IDSet) Add(id string) {
	if id != "" {
		s[id] = struct{}{}
	}
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
