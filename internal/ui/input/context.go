package input

import (
	"orgdir/internal/directory"
	"orgdir/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Controller *directory.Controller
	State      *state.AppState
}

// CandidateCount returns the number of visible suggestions
func (c *ModelContext) CandidateCount() int {
	return len(c.Controller.Candidates())
}

// Highlight returns the highlighted suggestion
func (c *ModelContext) Highlight() int {
	return c.State.Highlight
}

// HasDetails reports whether a record is on screen
func (c *ModelContext) HasDetails() bool {
	_, ok := c.Controller.Details()
	return ok
}
