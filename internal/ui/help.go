package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"orgdir/internal/ui/input/types"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// renderHelpContent renders the full key reference
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	k := r.keys
	sections := []helpSection{
		{"Searching", []key.Binding{k.Confirm, k.Next, k.Prev, k.Pick, k.Clear, k.PageUp, k.PageDown, k.Help, k.ForceQuit}},
		{"Viewing a selection", []key.Binding{k.Refocus, k.Clear, k.LineUp, k.LineDown, k.LockedHelp, k.Quit}},
		{"Opening links", []key.Binding{k.Website, k.Phone, k.HelpPage, k.Twitter, k.Facebook}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("orgdir Help"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(strings.Join(b.Keys(), ", ")), descStyle.Render(b.Help().Desc)))
		}
	}

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("click"), descStyle.Render("Select a suggestion, or edit the search again")))
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render("wheel"), descStyle.Render("Scroll")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
