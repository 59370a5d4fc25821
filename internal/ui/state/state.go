package state

import "time"

// AppState contains the UI state that is not owned by the directory controller
type AppState struct {
	// Terminal
	Width  int
	Height int

	// Suggestion list
	Highlight int // highlighted suggestion row

	// Loading
	Loading       bool   // data source not yet read
	LoadingSource string // what is being read
	StatusMessage string // status bar message

	// Layout
	BodyTop       int  // first screen row of the body viewport
	FooterVisible bool // body scrolled to its bottom

	Now time.Time // last clock tick
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Loading: true,
		Now:     time.Now(),
	}
}

// ClampHighlight keeps the highlight inside a list of n rows
func (s *AppState) ClampHighlight(n int) {
	if n <= 0 {
		s.Highlight = 0
		return
	}
	if s.Highlight < 0 {
		s.Highlight = 0
	}
	if s.Highlight >= n {
		s.Highlight = n - 1
	}
}

// MoveHighlight moves the highlight by delta, wrapping around n rows
func (s *AppState) MoveHighlight(delta, n int) {
	if n <= 0 {
		s.Highlight = 0
		return
	}
	s.Highlight = ((s.Highlight+delta)%n + n) % n
}
