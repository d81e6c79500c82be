// Package searchselect implements the searchable person picker: a text input
// whose debounced content filters a list of people shown in a dropdown.
//
// The dropdown is either open or closed. Focusing the input or editing its
// text opens it; choosing a suggestion or clicking anywhere outside the
// widget closes it. Editing always clears the current selection.
package searchselect

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"peoplepicker/internal/debounce"
	"peoplepicker/internal/domain"
	"peoplepicker/internal/eventbus"
	"peoplepicker/internal/ui/logic"
	"peoplepicker/internal/ui/mouse"
	"peoplepicker/internal/ui/views"
)

// Identifiers of the rendered elements. Each is registered as a hit region
// on every frame; suggestion rows carry their index into Filtered as data.
const (
	HookRoot            = "searchable-select"
	HookTitle           = "title"
	HookSearchInput     = "search-input"
	HookSuggestionsList = "suggestions-list"
	HookSuggestionItem  = "suggestion-item"
	HookNoSuggestions   = "no-suggestions-message"
)

const (
	defaultWidth = 40
	minWidth     = 12
)

// Config holds the options for New. Zero values select defaults.
type Config struct {
	// People is the full list to search. It is copied and never modified.
	People []domain.Person

	// Debounce is the quiet period before the filter runs.
	Debounce time.Duration

	// Clock drives the debounce timer. Nil means the wall clock.
	Clock clock.Clock

	// Width is the inner width of the input and the dropdown, in cells.
	Width int

	// MaxRows caps the visible suggestion rows; 0 shows all of them.
	MaxRows int

	TitlePlaceholder string
	InputPlaceholder string
	NoMatches        string

	KeyMap *KeyMap
	Styles *views.Styles

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Model is the widget state. It is only touched from the Bubble Tea update
// loop.
type Model struct {
	people    []domain.Person
	filtered  []domain.Person
	selected  *domain.Person
	open      bool
	highlight int
	offset    int

	input     textinput.Model
	debouncer *debounce.Debouncer
	pending   *debounce.Handle

	regions     *mouse.HitMap
	unsubscribe func()

	originX, originY int
	width            int
	maxRows          int
	titlePlaceholder string
	noMatches        string

	keys   KeyMap
	styles *views.Styles
	logger *zap.Logger
}

// New creates the widget with the dropdown closed, nothing selected, an empty
// input and the full list as the current suggestions.
func New(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}

	styles := cfg.Styles
	if styles == nil {
		styles = views.NewStyles()
	}

	if cfg.TitlePlaceholder == "" {
		cfg.TitlePlaceholder = "No selected person"
	}
	if cfg.InputPlaceholder == "" {
		cfg.InputPlaceholder = "Enter a part of the name"
	}
	if cfg.NoMatches == "" {
		cfg.NoMatches = "No matching suggestions"
	}

	people := make([]domain.Person, len(cfg.People))
	copy(people, cfg.People)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = cfg.InputPlaceholder
	ti.Focus()

	m := &Model{
		people:           people,
		filtered:         people,
		input:            ti,
		debouncer:        debounce.New(cfg.Debounce, cfg.Clock),
		regions:          mouse.NewHitMap(),
		maxRows:          cfg.MaxRows,
		titlePlaceholder: cfg.TitlePlaceholder,
		noMatches:        cfg.NoMatches,
		keys:             keys,
		styles:           styles,
		logger:           logger,
	}

	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	m.SetWidth(width)

	return m
}

// Init returns the cursor blink command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mount subscribes the outside-click handler to the document click bus.
// Mounting twice is a no-op.
func (m *Model) Mount(bus *eventbus.Bus) {
	if m.unsubscribe != nil {
		return
	}
	m.unsubscribe = bus.Subscribe(eventbus.EventClick, m.handleDocumentClick)
	m.logger.Debug("search select mounted", zap.Int("people", len(m.people)))
}

// Unmount cancels the pending filter and releases the click subscription.
// The subscription is released even if cancelling panics.
func (m *Model) Unmount() {
	defer func() {
		if m.unsubscribe != nil {
			m.unsubscribe()
			m.unsubscribe = nil
		}
	}()

	m.debouncer.Stop()
	m.pending = nil
	m.logger.Debug("search select unmounted")
}

// Mounted reports whether the click subscription is held
func (m *Model) Mounted() bool {
	return m.unsubscribe != nil
}

// Update handles a message and returns the follow-up command
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounce.FiredMsg:
		m.commitFilter(msg)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m.updateInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.open {
			m.moveHighlight(-1)
		}
		return nil

	case key.Matches(msg, m.keys.Down):
		if m.open {
			m.moveHighlight(1)
		}
		return nil

	case key.Matches(msg, m.keys.Select):
		if m.open && len(m.filtered) > 0 {
			m.selectIndex(m.highlight)
		}
		return nil

	case key.Matches(msg, m.keys.Close):
		if m.open {
			m.open = false
			m.logger.Debug("dropdown closed by keyboard")
		}
		return nil

	case key.Matches(msg, m.keys.Focus):
		return m.focus()
	}

	return m.updateInput(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.open {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveHighlight(-1)
			return nil
		case tea.MouseButtonWheelDown:
			m.moveHighlight(1)
			return nil
		}
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	region, ok := m.regions.HitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}

	switch region.ID {
	case HookSuggestionItem:
		if index, ok := region.Data.(int); ok && m.open {
			m.selectIndex(index)
		}
	case HookSearchInput:
		return m.focus()
	}
	return nil
}

// handleDocumentClick closes the dropdown when a click lands outside the
// widget. Clicks on the input or the dropdown are left to handleMouse.
func (m *Model) handleDocumentClick(e eventbus.Event) {
	click, ok := e.(eventbus.ClickEvent)
	if !ok || !m.open {
		return
	}
	if m.regions.Contains(HookRoot, click.X, click.Y) {
		return
	}
	m.open = false
	m.logger.Debug("dropdown closed by outside click", zap.Int("x", click.X), zap.Int("y", click.Y))
}

// updateInput forwards msg to the text input and treats any change of its
// value as an edit.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != before {
		return tea.Batch(cmd, m.edit(value))
	}
	return cmd
}

func (m *Model) edit(value string) tea.Cmd {
	m.selected = nil
	m.open = true
	m.pending = m.debouncer.Trigger(value)
	return m.pending.Cmd()
}

func (m *Model) focus() tea.Cmd {
	m.open = true
	return m.input.Focus()
}

func (m *Model) commitFilter(msg debounce.FiredMsg) {
	if !m.debouncer.IsCurrent(msg) {
		return
	}
	m.pending = nil
	m.filtered = logic.FilterPeople(msg.Query, m.people)
	m.highlight = 0
	m.offset = 0
	m.logger.Debug("filter committed",
		zap.String("query", msg.Query),
		zap.Int("matches", len(m.filtered)))
}

func (m *Model) selectIndex(index int) {
	if index < 0 || index >= len(m.filtered) {
		return
	}
	person := m.filtered[index]
	m.selected = &person
	m.input.SetValue(person.Name)
	m.input.CursorEnd()
	m.open = false
	m.logger.Debug("person selected", zap.String("name", person.Name))
}

func (m *Model) moveHighlight(delta int) {
	n := len(m.filtered)
	if n == 0 {
		return
	}
	m.highlight = max(0, min(n-1, m.highlight+delta))

	if m.maxRows <= 0 {
		return
	}
	if m.highlight < m.offset {
		m.offset = m.highlight
	}
	if m.highlight >= m.offset+m.maxRows {
		m.offset = m.highlight - m.maxRows + 1
	}
}

// window returns the half-open range of suggestions currently drawn
func (m *Model) window() (int, int) {
	n := len(m.filtered)
	if m.maxRows <= 0 || n <= m.maxRows {
		return 0, n
	}
	start := min(m.offset, n-m.maxRows)
	return start, start + m.maxRows
}

// SetOrigin sets the screen cell where the widget's first line is drawn
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetWidth sets the inner width of the input and dropdown
func (m *Model) SetWidth(width int) {
	m.width = max(width, minWidth)
	// room for the prompt and the cursor cell
	m.input.Width = m.width - len(m.input.Prompt) - 1
}

// Value returns the text currently in the input
func (m *Model) Value() string {
	return m.input.Value()
}

// Selected returns the chosen person, if any
func (m *Model) Selected() (domain.Person, bool) {
	if m.selected == nil {
		return domain.Person{}, false
	}
	return *m.selected, true
}

// Filtered returns a copy of the current suggestions
func (m *Model) Filtered() []domain.Person {
	out := make([]domain.Person, len(m.filtered))
	copy(out, m.filtered)
	return out
}

// IsOpen reports whether the dropdown is shown
func (m *Model) IsOpen() bool {
	return m.open
}

// Highlighted returns the index of the keyboard-highlighted suggestion
func (m *Model) Highlighted() int {
	return m.highlight
}

// Pending reports whether a filter run is scheduled and has not fired
func (m *Model) Pending() bool {
	return m.pending != nil && m.debouncer.Pending()
}

// Title returns the header text
func (m *Model) Title() string {
	if m.selected != nil {
		return m.selected.String()
	}
	return m.titlePlaceholder
}

// Regions returns the hit regions recorded by the last View
func (m *Model) Regions() *mouse.HitMap {
	return m.regions
}

// KeyMap returns the widget's key bindings
func (m *Model) KeyMap() KeyMap {
	return m.keys
}
