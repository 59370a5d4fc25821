package types

import "orgdir/internal/domain"

// QueryChangedAction carries the new content of the search input
type QueryChangedAction struct {
	Text string
}

func (a QueryChangedAction) Type() string { return "query_changed" }

// ConfirmAction is the confirm key in the search input
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// PickSuggestionAction selects the suggestion at a position in the current list
type PickSuggestionAction struct {
	Index int
}

func (a PickSuggestionAction) Type() string { return "pick_suggestion" }

// MoveHighlightAction moves the keyboard highlight in the suggestion list
type MoveHighlightAction struct {
	Delta int
}

func (a MoveHighlightAction) Type() string { return "move_highlight" }

// RefocusAction unlocks a locked input
type RefocusAction struct{}

func (a RefocusAction) Type() string { return "refocus" }

// ScrollAction scrolls the body
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "top", "bottom"
}

func (a ScrollAction) Type() string { return "scroll" }

// OpenLinkAction opens one of the shown record's links
type OpenLinkAction struct {
	Field domain.LinkField
}

func (a OpenLinkAction) Type() string { return "open_link" }

// ToggleHelpAction opens the key reference
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// QuitAction exits the program
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
