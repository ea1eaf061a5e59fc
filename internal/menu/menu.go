package menu

// GroupID identifies one of the collapsible option groups.
type GroupID string

const (
	GroupKeyboard GroupID = "keyboard"
	GroupLocale   GroupID = "locale"
)

// Kind distinguishes group headers from selectable leaves.
type Kind int

const (
	KindHeader Kind = iota
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// ActionKind tags the operation bound to an entry.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionToggleGroup
	ActionApplyLocale
	ActionApplyLayout
)

func (k ActionKind) String() string {
	switch k {
	case ActionToggleGroup:
		return "toggle"
	case ActionApplyLocale:
		return "locale:apply"
	case ActionApplyLayout:
		return "layout:apply"
	default:
		return "none"
	}
}

// Action is the operation an entry performs when activated. Group is set for
// toggles, Code for apply actions.
type Action struct {
	Kind  ActionKind
	Group GroupID
	Code  string
}

// ID returns a stable identifier used for trace logging.
func (a Action) ID() string {
	switch a.Kind {
	case ActionToggleGroup:
		return a.Kind.String() + ":" + string(a.Group)
	case ActionApplyLocale, ActionApplyLayout:
		return a.Kind.String() + ":" + a.Code
	default:
		return a.Kind.String()
	}
}

// Entry is one row of the flattened menu.
type Entry struct {
	Kind        Kind
	Group       GroupID
	Label       string
	Description string
	Code        string
	Name        string
	Current     bool
	Action      Action
}

// IsHeader reports whether the entry is a group header.
func (e Entry) IsHeader() bool {
	return e.Kind == KindHeader
}

// Option is a (code, display name) pair offered by the system.
type Option struct {
	Code string
	Name string
}

// Status is the snapshot of the values currently active on the system.
type Status struct {
	Locale string
	Layout string
}

// ActionResult communicates the outcome of executing a leaf action.
type ActionResult struct {
	Info string
	Err  error
}

// Source supplies the options listed under each group and the current
// system values.
type Source interface {
	CurrentLocale() string
	CurrentLayout() string
	AvailableLocales() []Option
	AvailableLayouts() []Option
}

// Applier performs the side effects bound to leaf entries.
type Applier interface {
	ApplyLocale(code string) error
	ApplyLayout(code string) error
}

// Notifier delivers best-effort desktop notifications.
type Notifier interface {
	Notify(message string)
}

// Provider bundles everything the menu needs from the host system.
type Provider interface {
	Source
	Applier
	Notifier
}

// ReadStatus queries the source for a fresh status snapshot.
func ReadStatus(src Source) Status {
	if src == nil {
		return Status{}
	}
	return Status{Locale: src.CurrentLocale(), Layout: src.CurrentLayout()}
}
