package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"orgdir/internal/directory"
	"orgdir/internal/eventbus"
	"orgdir/internal/ui/state"
)

// TickMsg drives the loading spinner
type TickMsg time.Time

// SpinnerTick schedules the next spinner frame
func SpinnerTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state      *state.AppState
	controller *directory.Controller
	logger     *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, ctrl *directory.Controller, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state:      appState,
		controller: ctrl,
		logger:     logger,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DirectoryLoadedEvent:
		h.controller.Initialize(e.Records)
		h.state.Loading = false
		h.state.Highlight = 0
		h.state.StatusMessage = fmt.Sprintf("%d organizations", h.controller.Len())

	case eventbus.DirectoryLoadFailedEvent:
		// Failures stay out of the UI; the widget simply finds nothing.
		h.logger.Warn("directory unavailable", zap.String("source", e.Source), zap.Error(e.Err))
		h.controller.Reset()
		h.state.Loading = false
		h.state.Highlight = 0
		h.state.StatusMessage = ""

	case eventbus.RecordSelectedEvent:
		h.logger.Debug("record selected", zap.String("name", e.Name), zap.Bool("implicit", e.Implicit))
	}

	return nil
}
