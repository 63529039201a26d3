package vehicle

// Selection is the ordered set of models a product is compatible with,
// unique by ID. Every operation returns a new Selection.
type Selection struct {
	models []Model
	ids    map[string]struct{}
}

// NewSelection keeps the first occurrence of each ID. Models without an ID are dropped.
func NewSelection(models ...Model) Selection {
	s := Selection{
		models: make([]Model, 0, len(models)),
		ids:    make(map[string]struct{}, len(models)),
	}
	for _, m := range models {
		s.add(m)
	}
	return s
}

func (s Selection) Len() int { return len(s.models) }

func (s Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s Selection) Models() []Model {
	return append([]Model(nil), s.models...)
}

func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s.models))
	for _, m := range s.models {
		ids = append(ids, m.ID)
	}
	return ids
}

// Merge appends the candidates whose IDs are not selected yet and reports
// which ones were added.
func (s Selection) Merge(candidates []Model) (Selection, []Model) {
	next := NewSelection(s.models...)
	added := make([]Model, 0, len(candidates))
	for _, m := range candidates {
		if next.add(m) {
			added = append(added, m)
		}
	}
	return next, added
}

func (s Selection) Remove(id string) Selection {
	kept := make([]Model, 0, len(s.models))
	for _, m := range s.models {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return NewSelection(kept...)
}

func (s *Selection) add(m Model) bool {
	if m.ID == "" {
		return false
	}
	if _, dup := s.ids[m.ID]; dup {
		return false
	}
	s.ids[m.ID] = struct{}{}
	s.models = append(s.models, m)
	return true
}
