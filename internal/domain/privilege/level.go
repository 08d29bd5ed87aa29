package privilege

// Level is an ordered capability tier. Comparisons always use the numeric
// order, never equality on names. Values are spaced so intermediate tiers can
// be added without renumbering.
type Level int

const (
	LevelNone   Level = 0
	LevelView   Level = 10
	LevelEdit   Level = 20
	LevelAdd    Level = 30
	LevelDelete Level = 40
)

// Satisfies reports whether l grants at least min.
func (l Level) Satisfies(min Level) bool {
	return l >= min
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelView:
		return "view"
	case LevelEdit:
		return "edit"
	case LevelAdd:
		return "add"
	case LevelDelete:
		return "delete"
	default:
		return "unknown"
	}
}
