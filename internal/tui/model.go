package tui

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StateQuestion ViewState = iota
	StateSettings
	StateComplete
)

func (s ViewState) String() string {
	switch s {
	case StateQuestion:
		return "question"
	case StateSettings:
		return "settings"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Layout holds the terminal dimensions shared by all views.
type Layout struct {
	Width  int
	Height int
}

// DefaultLayout is used until the first WindowSizeMsg arrives.
var DefaultLayout = Layout{Width: 100, Height: 30}

// MainWidth is the width of the conversation column.
func (l Layout) MainWidth() int {
	if l.Width < 80 {
		return l.Width
	}
	return l.Width * 2 / 3
}

// SideWidth is the width of the summary panel, or 0 when the terminal is too
// narrow to show it.
func (l Layout) SideWidth() int {
	if l.Width < 80 {
		return 0
	}
	return l.Width - l.MainWidth()
}
