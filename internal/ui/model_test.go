package ui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgdir/internal/config"
	"orgdir/internal/directory"
	"orgdir/internal/domain"
	"orgdir/internal/eventbus"
	inputtypes "orgdir/internal/ui/input/types"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.ShowClocks = false
	cfg.UI.FooterText = "Listings are provided as is"
	return cfg
}

func scenarioRecords() []domain.OrganizationRecord {
	return []domain.OrganizationRecord{
		{Name: "Globex"},
		{Name: "Acme Bank", Website: "https://acmebank.example"},
		{Name: "Acme", Phone: "+1 555 0100", Hours: "9-5"},
	}
}

func newTestModel(t *testing.T, bus eventbus.EventBus, records []domain.OrganizationRecord) *Model {
	t.Helper()
	m := NewModel(bus, testConfig(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(EventMsg{Event: eventbus.DirectoryLoadedEvent{Source: "test", Records: records}})
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func candidateNames(m *Model) []string {
	var names []string
	for _, r := range m.ctrl.Candidates() {
		names = append(names, r.Name)
	}
	return names
}

func TestTypingSuggestsThenSelects(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())

	typeText(m, "ac")
	assert.Equal(t, directory.PhaseSuggesting, m.ctrl.Phase())
	assert.Equal(t, []string{"Acme", "Acme Bank"}, candidateNames(m))
	assert.Contains(t, m.View(), "Acme Bank")

	typeText(m, "me")
	assert.Equal(t, directory.PhaseSelected, m.ctrl.Phase())
	assert.Equal(t, inputtypes.ModeLocked, m.inputHandler.CurrentMode())
	assert.Equal(t, "Acme", m.inputHandler.TextInput().Value())
	assert.Contains(t, m.View(), "+1 555 0100")
}

func TestLockedInputRejectsTyping(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())
	typeText(m, "acme")
	require.True(t, m.ctrl.Locked())

	typeText(m, "xyz")
	assert.Equal(t, "Acme", m.inputHandler.TextInput().Value())
	assert.Equal(t, directory.PhaseSelected, m.ctrl.Phase())
}

func TestRefocusKeepsDetailsUntilNextKeystroke(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())
	typeText(m, "acme")

	pressRune(m, 'i')
	assert.False(t, m.ctrl.Locked())
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	det, ok := m.ctrl.Details()
	require.True(t, ok)
	assert.Equal(t, "Acme", det.Name)
	assert.Equal(t, "Acme", m.inputHandler.TextInput().Value())

	press(m, tea.KeyBackspace)
	assert.Equal(t, "Acm", m.inputHandler.TextInput().Value())
	assert.Equal(t, directory.PhaseSuggesting, m.ctrl.Phase())
	_, ok = m.ctrl.Details()
	assert.False(t, ok)
}

func TestEscapeWhileLockedClears(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())
	typeText(m, "acme")

	press(m, tea.KeyEsc)
	assert.Equal(t, directory.PhaseEmpty, m.ctrl.Phase())
	assert.False(t, m.ctrl.Locked())
	assert.Empty(t, m.inputHandler.TextInput().Value())
}

func TestEnterSelectsFirstCandidate(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())

	press(m, tea.KeyEnter)
	assert.Equal(t, directory.PhaseEmpty, m.ctrl.Phase())

	typeText(m, "a")
	press(m, tea.KeyEnter)
	sel, ok := m.ctrl.Selection()
	require.True(t, ok)
	assert.Equal(t, "Acme", sel.Name)

	// enter again refocuses
	press(m, tea.KeyEnter)
	assert.False(t, m.ctrl.Locked())
}

func TestTabPicksHighlighted(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())
	typeText(m, "a")

	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.state.Highlight)
	press(m, tea.KeyTab)

	sel, ok := m.ctrl.Selection()
	require.True(t, ok)
	assert.Equal(t, "Acme Bank", sel.Name)
	assert.Equal(t, "Acme Bank", m.inputHandler.TextInput().Value())
}

func TestClickSuggestionAndRefocus(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())
	typeText(m, "ac")

	m.Update(tea.MouseMsg{X: 4, Y: m.state.BodyTop + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	sel, ok := m.ctrl.Selection()
	require.True(t, ok)
	assert.Equal(t, "Acme Bank", sel.Name)

	m.Update(tea.MouseMsg{X: 4, Y: m.header.InputTop + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.False(t, m.ctrl.Locked())
	_, ok = m.ctrl.Details()
	assert.True(t, ok)
}

func TestClickOutsideRowsIsIgnored(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())
	typeText(m, "ac")

	m.Update(tea.MouseMsg{X: 4, Y: m.state.BodyTop + 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, directory.PhaseSuggesting, m.ctrl.Phase())
}

func TestFooterFollowsScrollPosition(t *testing.T) {
	var records []domain.OrganizationRecord
	for i := 1; i <= 30; i++ {
		records = append(records, domain.OrganizationRecord{Name: fmt.Sprintf("Org %02d", i)})
	}
	m := newTestModel(t, nil, records)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	assert.True(t, m.state.FooterVisible, "short body counts as bottom")
	assert.Contains(t, m.View(), "Listings are provided as is")

	typeText(m, "o")
	assert.False(t, m.state.FooterVisible)
	assert.NotContains(t, m.View(), "Listings are provided as is")
	bodyHeight := m.viewport.Height

	for i := 0; i < 10; i++ {
		press(m, tea.KeyPgDown)
	}
	assert.True(t, m.state.FooterVisible)
	assert.Contains(t, m.View(), "Listings are provided as is")
	assert.Equal(t, bodyHeight, m.viewport.Height, "footer line is always reserved")

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.False(t, m.state.FooterVisible)
}

func TestHighlightStaysInView(t *testing.T) {
	var records []domain.OrganizationRecord
	for i := 1; i <= 30; i++ {
		records = append(records, domain.OrganizationRecord{Name: fmt.Sprintf("Org %02d", i)})
	}
	m := newTestModel(t, nil, records)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	typeText(m, "o")
	require.Equal(t, 0, m.viewport.YOffset)

	// wraps to the last row
	press(m, tea.KeyUp)
	require.Equal(t, 29, m.state.Highlight)
	assert.LessOrEqual(t, m.viewport.YOffset, 29)
	assert.Greater(t, m.viewport.YOffset+m.viewport.Height, 29)
	assert.Contains(t, m.viewport.View(), "> Org 30")

	press(m, tea.KeyDown)
	require.Equal(t, 0, m.state.Highlight)
	assert.Equal(t, 0, m.viewport.YOffset)
	assert.Contains(t, m.viewport.View(), "> Org 01")
}

func TestClockTickFollowsWallClock(t *testing.T) {
	msg := clockTick()()
	tick, ok := msg.(clockTickMsg)
	require.True(t, ok, "got %T", msg)
	assert.Less(t, time.Time(tick).Nanosecond(), int(250*time.Millisecond))
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, nil, scenarioRecords())

	assert.False(t, isQuit(pressRune(m, 'q')), "q is text while searching")
	press(m, tea.KeyEsc)

	typeText(m, "acme")
	assert.True(t, isQuit(pressRune(m, 'q')))
	assert.True(t, isQuit(press(m, tea.KeyCtrlC)))
}

func TestSelectionIsPublished(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	got := make(chan eventbus.RecordSelectedEvent, 2)
	bus.Subscribe(eventbus.EventRecordSelected, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.RecordSelectedEvent)
	})

	m := newTestModel(t, bus, scenarioRecords())
	typeText(m, "acme")

	select {
	case e := <-got:
		assert.Equal(t, "Acme", e.Name)
		assert.True(t, e.Implicit)
	case <-time.After(time.Second):
		t.Fatal("selection not published")
	}
}

func TestLoadFailureLeavesEmptyWidget(t *testing.T) {
	m := NewModel(nil, testConfig(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(EventMsg{Event: eventbus.DirectoryLoadFailedEvent{Source: "missing.json", Err: assert.AnError}})

	typeText(m, "acme")
	assert.Empty(t, m.ctrl.Candidates())
	assert.Equal(t, directory.PhaseSuggesting, m.ctrl.Phase())
	assert.NotContains(t, m.View(), "missing.json")
}

func TestTextTypedWhileLoadingIsSearched(t *testing.T) {
	m := NewModel(nil, testConfig(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	typeText(m, "ac")

	m.Update(EventMsg{Event: eventbus.DirectoryLoadedEvent{Source: "test", Records: scenarioRecords()}})
	assert.Equal(t, []string{"Acme", "Acme Bank"}, candidateNames(m))
}

func TestOpenLinkUsesDetails(t *testing.T) {
	var opened []string
	openURL = func(u string) error {
		opened = append(opened, u)
		return nil
	}
	t.Cleanup(func() { openURL = defaultOpenURL })

	m := newTestModel(t, nil, scenarioRecords())
	typeText(m, "ac")
	press(m, tea.KeyDown)
	press(m, tea.KeyTab)
	require.True(t, m.ctrl.Locked())

	cmd := pressRune(m, 'w')
	require.NotNil(t, cmd)
	msg, ok := cmd().(linkOpenedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.err)
	assert.Equal(t, []string{"https://acmebank.example"}, opened)

	assert.Nil(t, pressRune(m, 'p'), "no phone on record")
}
