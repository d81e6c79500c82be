package ui

import (
	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"peoplepicker/internal/config"
	"peoplepicker/internal/domain"
	"peoplepicker/internal/eventbus"
	"peoplepicker/internal/ui/searchselect"
	"peoplepicker/internal/ui/views"
)

// Options configures NewModel
type Options struct {
	Config *config.Config
	People []domain.Person
	Logger *zap.Logger
	// Clock drives the widget's debounce timer; nil means the wall clock
	Clock clock.Clock
}

// Model is the root program model. It owns the document click bus and hosts
// the search select widget.
type Model struct {
	bus    *eventbus.Bus
	widget *searchselect.Model
	keys   keyMap
	help   help.Model
	styles *views.Styles
	logger *zap.Logger

	width       int
	height      int
	maxWidth    int
	inPagerMode bool // nothing is drawn while ov owns the terminal

	helpOps *HelpOps
	program *tea.Program
}

// NewModel creates the UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	styles := views.NewStyles()
	widget := searchselect.New(searchselect.Config{
		People:           opts.People,
		Debounce:         cfg.Debounce.Duration,
		Clock:            opts.Clock,
		Width:            cfg.UI.Width,
		MaxRows:          cfg.UI.MaxRows,
		TitlePlaceholder: cfg.UI.TitlePlaceholder,
		InputPlaceholder: cfg.UI.InputPlaceholder,
		NoMatches:        cfg.UI.NoMatches,
		Styles:           styles,
		Logger:           logger.Named("searchselect"),
	})
	widget.SetOrigin(styles.Origin())

	return &Model{
		bus:      eventbus.New(logger.Named("eventbus")),
		widget:   widget,
		keys:     newKeyMap(widget.KeyMap()),
		help:     help.New(),
		styles:   styles,
		logger:   logger,
		maxWidth: cfg.UI.Width,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Widget returns the hosted search select
func (m *Model) Widget() *searchselect.Model {
	return m.widget
}

// Close unmounts the widget. It is safe to call more than once.
func (m *Model) Close() {
	m.widget.Unmount()
}

// Init mounts the widget and starts the cursor blink
func (m *Model) Init() tea.Cmd {
	m.widget.Mount(m.bus)
	return m.widget.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeWidget()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			return m, m.showHelp()
		}

	case tea.MouseMsg:
		// the element under the pointer sees the press before the document
		cmd := m.widget.Update(msg)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.bus.Publish(eventbus.ClickEvent{X: msg.X, Y: msg.Y})
		}
		return m, cmd

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			// log only; the screen is being restored
			m.logger.Warn("help pager failed", zap.Error(msg.err))
		}
		return m, nil
	}

	return m, m.widget.Update(msg)
}

// resizeWidget narrows the widget to the terminal, never past the configured width
func (m *Model) resizeWidget() {
	// Main padding on both sides plus the input border
	available := m.width - m.styles.Main.GetHorizontalPadding() - 2
	width := m.maxWidth
	if available < width {
		width = available
	}
	m.widget.SetWidth(width)
}

func (m *Model) showHelp() tea.Cmd {
	if m.helpOps == nil {
		m.logger.Debug("help requested without a program")
		return nil
	}
	m.inPagerMode = true
	content := RenderHelpContent(m.keys)
	ops := m.helpOps
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.widget.View(),
		"",
		m.styles.Help.Render(m.help.View(m.keys)),
	)
	return m.styles.Main.Render(body)
}
