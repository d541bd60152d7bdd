package plan

// ActionKind identifies the kind of an abstract filesystem action.
type ActionKind int

const (
	ActionCopy ActionKind = iota
	ActionMove
	ActionDelete
	ActionCreate
	ActionLink
	ActionExchange
	ActionComment
)

// String returns a stable lowercase name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionCopy:
		return "copy"
	case ActionMove:
		return "move"
	case ActionDelete:
		return "delete"
	case ActionCreate:
		return "create"
	case ActionLink:
		return "link"
	case ActionExchange:
		return "exchange"
	case ActionComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Action is one abstract filesystem operation in the emitted plan.
// Which fields are set depends on Kind:
//
//	Copy, Move:  From, To
//	Exchange:    From, To (the two paths swapped atomically)
//	Delete:      Path
//	Create:      Path
//	Link:        Path (the link), Target (what it points at)
//	Comment:     Text (annotation only, no filesystem effect)
type Action struct {
	Kind   ActionKind
	From   string
	To     string
	Path   string
	Target string
	Text   string
}
