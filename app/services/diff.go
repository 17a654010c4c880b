package services

// IDSet is a set of unique device identifiers.
type IDSet map[string]struct{}

func NewIDSet(ids []string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Diff classifies identifiers against persisted state: added holds ids
// present in the snapshot but not in the database, removed the reverse.
// Both are computed once, before any mutation.
func Diff(snapshot, persisted IDSet) (added, removed IDSet) {
	added = make(IDSet)
	for id := range snapshot {
		if !persisted.Has(id) {
			added[id] = struct{}{}
		}
	}
	removed = make(IDSet)
	for id := range persisted {
		if !snapshot.Has(id) {
			removed[id] = struct{}{}
		}
	}
	return added, removed
}
