package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeSearch edits the query
	ModeSearch Mode = iota
	// ModeLocked shows a confirmed record; typing is rejected until refocus
	ModeLocked
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CandidateCount() int
	Highlight() int
	HasDetails() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) tea.Cmd

	// Exit is called when leaving this mode
	Exit(ctx Context)

	// Name returns the mode name for display
	Name() string
}
