package menu

// Group is a collapsible section of the menu.
type Group struct {
	ID       GroupID
	Title    string
	Expanded bool
}

// Registry holds the groups in display order.
type Registry struct {
	groups []*Group
	byID   map[GroupID]*Group
}

// BuildRegistry returns the keyboard and locale groups, both expanded.
func BuildRegistry() *Registry {
	return NewRegistry(
		&Group{ID: GroupKeyboard, Title: "Keyboard Layouts", Expanded: true},
		&Group{ID: GroupLocale, Title: "System Locales", Expanded: true},
	)
}

// NewRegistry constructs a registry from the supplied groups. Later groups
// with a duplicate ID are ignored.
func NewRegistry(groups ...*Group) *Registry {
	r := &Registry{byID: make(map[GroupID]*Group, len(groups))}
	for _, g := range groups {
		if g == nil {
			continue
		}
		if _, ok := r.byID[g.ID]; ok {
			continue
		}
		r.groups = append(r.groups, g)
		r.byID[g.ID] = g
	}
	return r
}

// Groups returns the groups in display order.
func (r *Registry) Groups() []*Group {
	return r.groups
}

// Find locates a group by ID.
func (r *Registry) Find(id GroupID) (*Group, bool) {
	g, ok := r.byID[id]
	return g, ok
}

// Toggle flips the expansion flag of the group and returns the new value.
func (r *Registry) Toggle(id GroupID) (bool, bool) {
	g, ok := r.byID[id]
	if !ok {
		return false, false
	}
	g.Expanded = !g.Expanded
	return g.Expanded, true
}

// Expanded reports whether the group is currently expanded.
func (r *Registry) Expanded(id GroupID) bool {
	g, ok := r.byID[id]
	return ok && g.Expanded
}
