package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"orgdir/internal/clock"
	"orgdir/internal/config"
	"orgdir/internal/directory"
	"orgdir/internal/eventbus"
	"orgdir/internal/ui/handlers"
	"orgdir/internal/ui/input"
	inputtypes "orgdir/internal/ui/input/types"
	"orgdir/internal/ui/state"
	"orgdir/internal/ui/viewmodels"
	"orgdir/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger
	state  *state.AppState       // UI-only state
	ctrl   *directory.Controller // search and selection state

	help        help.Model
	keys        inputtypes.KeyMap
	viewport    viewport.Model
	header      views.Header
	zones       []clock.Zone
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState()
	appState.LoadingSource = cfg.DataSource
	keys := inputtypes.DefaultKeyMap()
	ctrl := directory.NewController(directory.ParseLocale(cfg.Locale))

	m := &Model{
		bus:          bus,
		config:       cfg,
		logger:       logger,
		state:        appState,
		ctrl:         ctrl,
		help:         help.New(),
		keys:         keys,
		viewport:     viewport.New(0, 0),
		zones:        loadZones(cfg, logger),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		helpRenderer: NewHelpRenderer(keys),
	}
	m.viewport.MouseWheelEnabled = false // wheel is routed through scroll()

	m.eventHandler = handlers.NewEventHandler(appState, ctrl, logger)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.inputHandler.TextInput(), m.zones)

	m.refreshLayout()
	return m
}

func loadZones(cfg *config.Config, logger *zap.Logger) []clock.Zone {
	zones := make([]clock.Zone, 0, len(cfg.Zones))
	for _, zc := range cfg.Zones {
		z, err := clock.LoadZone(zc.Label, zc.TZ)
		if err != nil {
			logger.Warn("skipping clock", zap.String("label", zc.Label), zap.Error(err))
			continue
		}
		zones = append(zones, z)
	}
	return zones
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Controller exposes the directory controller
func (m *Model) Controller() *directory.Controller {
	return m.ctrl
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.inputHandler.Init()}
	if m.clocksEnabled() {
		cmds = append(cmds, clockTick())
	}
	if m.state.Loading {
		cmds = append(cmds, handlers.SpinnerTick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages. Every message ends with a layout refresh so the
// footer tracks the body position after scrolling, resizing and content changes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		for _, action := range m.mouseActions(msg) {
			cmds = append(cmds, m.processAction(action))
		}

	default:
		cmds = append(cmds, m.inputHandler.Update(msg), m.handleNonKeyboardMsg(msg))
	}

	cmds = append(cmds, m.syncInputMode())
	m.refreshLayout()
	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}

	footer := m.renderer.RenderFooter(m.config.UI.FooterText, m.state.FooterVisible, m.state.Width)
	return m.renderer.Compose(m.header.View, m.viewport.View(), footer, m.helpLine())
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{Controller: m.ctrl, State: m.state}
}

// syncInputMode follows the controller's lock flag
func (m *Model) syncInputMode() tea.Cmd {
	cmd := m.inputHandler.Sync(m.ctrl.Locked(), m.ctrl.Input(), m.context())
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	return cmd
}

// refreshLayout re-renders the header and body and recomputes the footer
// visibility. The footer line is always reserved.
func (m *Model) refreshLayout() {
	m.state.ClampHighlight(len(m.ctrl.Candidates()))
	vs := m.viewModel.BuildViewState(m.ctrl.Snapshot())

	m.header = m.renderer.Header(vs)
	headerHeight := lipgloss.Height(m.header.View)

	bodyHeight := m.state.Height - headerHeight - 2 // footer and help lines
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.state.BodyTop = headerHeight
	m.viewport.Width = m.state.Width
	m.viewport.Height = bodyHeight
	m.viewport.SetContent(m.renderer.Body(vs))

	m.state.FooterVisible = m.viewport.AtBottom()
}

func (m *Model) helpLine() string {
	if m.ctrl.Locked() {
		return m.help.ShortHelpView(m.keys.LockedShortHelp())
	}
	return m.help.ShortHelpView(m.keys.SearchHelp())
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QueryChangedAction:
		m.inputHandler.SetText(a.Text)
		m.ctrl.QueryChanged(a.Text)
		m.state.Highlight = 0
		m.viewport.GotoTop()
		if sel, ok := m.ctrl.Selection(); ok {
			m.publishSelected(sel.Name, true)
		}

	case inputtypes.ConfirmAction:
		if m.ctrl.EnterPressed() {
			m.selected()
		}

	case inputtypes.PickSuggestionAction:
		if m.ctrl.SuggestionClicked(a.Index) {
			m.selected()
		}

	case inputtypes.MoveHighlightAction:
		m.state.MoveHighlight(a.Delta, len(m.ctrl.Candidates()))
		m.revealHighlight()

	case inputtypes.RefocusAction:
		m.ctrl.InputRefocused()

	case inputtypes.ScrollAction:
		m.scroll(a.Direction)

	case inputtypes.OpenLinkAction:
		if rec, ok := m.ctrl.Details(); ok {
			return openLink(rec, a.Field)
		}

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRenderer.renderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) selected() {
	m.state.Highlight = 0
	m.viewport.GotoTop()
	if sel, ok := m.ctrl.Selection(); ok {
		m.publishSelected(sel.Name, false)
	}
}

func (m *Model) publishSelected(name string, implicit bool) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(eventbus.RecordSelectedEvent{Name: name, Implicit: implicit})
}

// revealHighlight scrolls the body so the highlighted suggestion row is
// visible. Suggestion rows start at the top of the body.
func (m *Model) revealHighlight() {
	row := m.state.Highlight
	switch {
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

func (m *Model) scroll(direction string) {
	offset := m.viewport.YOffset
	switch direction {
	case "up":
		offset--
	case "down":
		offset++
	case "pageup":
		offset -= m.viewport.Height
	case "pagedown":
		offset += m.viewport.Height
	}
	m.viewport.SetYOffset(offset)
}

// mouseActions maps a mouse event to input actions. Suggestion rows are the
// first lines of the body.
func (m *Model) mouseActions(msg tea.MouseMsg) []inputtypes.Action {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return []inputtypes.Action{inputtypes.ScrollAction{Direction: "up"}}
	case tea.MouseButtonWheelDown:
		return []inputtypes.Action{inputtypes.ScrollAction{Direction: "down"}}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}

	if msg.Y >= m.header.InputTop && msg.Y <= m.header.InputBottom {
		if m.ctrl.Locked() {
			return []inputtypes.Action{inputtypes.RefocusAction{}}
		}
		return nil
	}

	if msg.Y < m.state.BodyTop || msg.Y >= m.state.BodyTop+m.viewport.Height {
		return nil
	}
	row := msg.Y - m.state.BodyTop + m.viewport.YOffset
	if row < 0 || row >= len(m.ctrl.Candidates()) {
		return nil
	}
	return []inputtypes.Action{inputtypes.PickSuggestionAction{Index: row}}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		pending := m.inputHandler.TextInput().Value()
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if _, ok := msg.Event.(eventbus.DirectoryLoadedEvent); ok && pending != "" {
			// text typed while loading is searched once records arrive
			m.ctrl.QueryChanged(pending)
		}
		return cmd

	case handlers.TickMsg:
		if !m.state.Loading || m.inPagerMode {
			return nil
		}
		return handlers.SpinnerTick()

	case clockTickMsg:
		m.state.Now = time.Time(msg)
		return clockTick()

	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Warn("open link failed", zap.String("field", string(msg.field)), zap.Error(msg.err))
			m.state.StatusMessage = fmt.Sprintf("Could not open %s", msg.field)
			return nil
		}
		m.logger.Debug("opened link", zap.String("field", string(msg.field)), zap.String("url", msg.url))
		return nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.logger.Warn("help pager failed", zap.Error(msg.err))
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.state.Loading {
			return handlers.SpinnerTick()
		}
		return nil
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) clocksEnabled() bool {
	return m.config.UI.ShowClocks && len(m.zones) > 0
}

// clockTick fires on the next whole second of the wall clock
func clockTick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
