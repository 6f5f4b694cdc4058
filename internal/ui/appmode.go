package ui

// AppMode is the top-level application mode. Leader bindings can be limited to modes.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
