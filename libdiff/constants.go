package libdiff

// Line prefixes of a rendered diff.
const (
	DeletePrefix = "- "
	InsertPrefix = "+ "
	EqualPrefix  = "  "
)
