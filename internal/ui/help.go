package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// RenderHelpContent generates the pager text from the active bindings
func RenderHelpContent(keys keyMap) string {
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

	var help strings.Builder

	help.WriteString(titleStyle.Render("People Picker Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("type"), descStyle.Render("Filter people by a part of the name")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("backspace"), descStyle.Render("Edit the query (clears the selection)")))
	help.WriteString("\n")

	sections := []string{"Suggestions", "Other"}
	for i, group := range keys.FullHelp() {
		name := "Keys"
		if i < len(sections) {
			name = sections[i]
		}
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("click input"), descStyle.Render("Open the suggestion list")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("click name"), descStyle.Render("Select that person")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("click away"), descStyle.Render("Close the suggestion list")))
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render("wheel"), descStyle.Render("Move the highlight")))

	return help.String()
}

// HelpOps shows help in a pager while the program has released the terminal
type HelpOps struct {
	program *tea.Program
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{program: program}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// let ov finish writing before bubbletea repaints
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// keep ov's last screen off our alt screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
