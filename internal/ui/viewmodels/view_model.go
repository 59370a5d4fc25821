package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"orgdir/internal/clock"
	"orgdir/internal/config"
	"orgdir/internal/directory"
	"orgdir/internal/ui/input/types"
	"orgdir/internal/ui/state"
	"orgdir/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	zones            []clock.Zone
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput *textinput.Model, zones []clock.Zone) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		zones:            zones,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// Readings returns the clock readings at the last tick
func (vm *ViewModel) Readings() []clock.Reading {
	readings := make([]clock.Reading, 0, len(vm.zones))
	for _, z := range vm.zones {
		readings = append(readings, clock.Read(z, vm.state.Now))
	}
	return readings
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(snap directory.Snapshot) views.ViewState {
	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Loading:       vm.state.Loading,
		LoadingSource: vm.state.LoadingSource,
		StatusMessage: vm.state.StatusMessage,
		InputView:     vm.inputTransformer.GetInputText(),
		Locked:        snap.Locked,
		Candidates:    snap.Candidates,
		Highlight:     vm.state.Highlight,
		Details:       snap.Details,
		AbsentMarker:  vm.config.UI.AbsentMarker,
		ShowClocks:    vm.config.UI.ShowClocks && snap.ShowClocks(),
		ClockRadius:   vm.config.UI.ClockRadius,
		FooterText:    vm.config.UI.FooterText,
		FooterVisible: vm.state.FooterVisible,
	}
	if snap.ShowDisclaimer() {
		vs.Disclaimer = vm.config.UI.Disclaimer
	}
	if vs.ShowClocks {
		vs.Clocks = vm.Readings()
	}
	return vs
}
