package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"orgdir/internal/ui/input/types"
)

// InputTransformer turns the text input into the line shown in the input box
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput *textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeSearch,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetInputText returns the input line for the view. A locked input shows the
// canonical name without a cursor.
func (it *InputTransformer) GetInputText() string {
	if it.textInput == nil {
		return ""
	}
	switch it.mode {
	case types.ModeLocked:
		return it.textInput.Value() + "  (i to edit)"
	default:
		return "Search: " + it.textInput.View()
	}
}
