package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Main             lipgloss.Style
	Title            lipgloss.Style
	TitlePlaceholder lipgloss.Style
	Input            lipgloss.Style
	InputFocused     lipgloss.Style
	Dropdown         lipgloss.Style
	Item             lipgloss.Style
	ItemHighlighted  lipgloss.Style
	NoMatches        lipgloss.Style
	Scroll           lipgloss.Style
	Help             lipgloss.Style
	Dim              lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Main:             lipgloss.NewStyle().Padding(1, 2),
		Title:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		TitlePlaceholder: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Item:            lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Padding(0, 1), // link blue
		ItemHighlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
		NoMatches:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1), // red
		Scroll:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(0, 1),
		Help:            lipgloss.NewStyle().Faint(true),
		Dim:             lipgloss.NewStyle().Faint(true),
	}
}

// Origin returns the top-left cell where content wrapped in Main starts
func (s *Styles) Origin() (x, y int) {
	return s.Main.GetPaddingLeft(), s.Main.GetPaddingTop()
}
