package searchselect

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"peoplepicker/internal/ui/mouse"
)

// View renders the header, the input and, when open, the dropdown. It also
// records the hit region of every rendered element, relative to the origin.
// Regions are added parent first so a child wins a tie with its parent.
func (m *Model) View() string {
	m.regions.Clear()
	x, y := m.originX, m.originY

	title := m.renderTitle()
	titleRect := blockRect(x, y, title)
	y += titleRect.H + 1
	blocks := []string{title, ""}

	inputStyle := m.styles.Input
	if m.input.Focused() {
		inputStyle = m.styles.InputFocused
	}
	input := inputStyle.Width(m.width).Render(m.input.View())
	inputRect := blockRect(x, y, input)
	blocks = append(blocks, input)
	y += inputRect.H

	root := inputRect
	var listRect mouse.Rect
	var rows []mouse.Region
	if m.open {
		var list string
		list, listRect, rows = m.renderSuggestions(x, y)
		blocks = append(blocks, list)
		root = root.Union(listRect)
	}

	m.regions.Add(HookRoot, root, nil)
	m.regions.Add(HookTitle, titleRect, nil)
	m.regions.Add(HookSearchInput, inputRect, nil)
	m.regions.Add(HookSuggestionsList, listRect, nil)
	for _, r := range rows {
		m.regions.Add(r.ID, r.Rect, r.Data)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) renderTitle() string {
	if m.selected != nil {
		return m.styles.Title.Render(m.Title())
	}
	return m.styles.TitlePlaceholder.Render(m.Title())
}

// renderSuggestions draws the dropdown with its top-left corner at (x, y) and
// returns its rectangle and the regions of its rows.
func (m *Model) renderSuggestions(x, y int) (string, mouse.Rect, []mouse.Region) {
	// rows start inside the border
	rowX, rowY := x+1, y+1
	var rows []string
	var regions []mouse.Region

	if len(m.filtered) == 0 {
		row := m.styles.NoMatches.Width(m.width).Render(m.noMatches)
		regions = append(regions, mouse.Region{ID: HookNoSuggestions, Rect: blockRect(rowX, rowY, row)})
		rows = append(rows, row)
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			style := m.styles.Item
			if i == m.highlight {
				style = m.styles.ItemHighlighted
			}
			row := style.Width(m.width).Render(m.filtered[i].Name)
			rect := blockRect(rowX, rowY, row)
			regions = append(regions, mouse.Region{ID: HookSuggestionItem, Rect: rect, Data: i})
			rows = append(rows, row)
			rowY += rect.H
		}
		if end-start < len(m.filtered) {
			more := fmt.Sprintf("%d-%d of %d", start+1, end, len(m.filtered))
			rows = append(rows, m.styles.Scroll.Width(m.width).Render(more))
		}
	}

	list := m.styles.Dropdown.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return list, blockRect(x, y, list), regions
}

func blockRect(x, y int, block string) mouse.Rect {
	return mouse.Rect{X: x, Y: y, W: lipgloss.Width(block), H: lipgloss.Height(block)}
}
