package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devpopsdotin/kubels/internal/menu"
)

const footerHeight = 1

const footerText = " Tab/Arrows: Navigate | /: Filter | Esc: Clear/Exit | q: Quit | ^Y: Yaml | ^D: Describe | ^L: Logs | ^X: Exec | ^S: Context | ^R: Refresh | Del: Delete"

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showContextPopup {
		return m.popupView()
	}

	bodyHeight := m.height - footerHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	nsWidth := m.width * 20 / 100
	kindWidth := m.width * 20 / 100
	resWidth := m.width - nsWidth - kindWidth
	widths := [3]int{nsWidth, kindWidth, resWidth}

	panes := make([]string, len(m.menus))
	for i := range m.menus {
		panes[i] = m.renderMenu(i, widths[i], bodyHeight)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	footer := styleFooter.Render(footerText)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderMenu renders one pane. The visible window is derived from the cursor
// each frame so the selection always stays on screen.
func (m *Model) renderMenu(idx, width, height int) string {
	mn := m.menus[idx]
	active := idx == m.active

	title := mn.Title
	switch {
	case mn.FilterMode() && active:
		title = fmt.Sprintf("%s [%s]", title, m.filterInput.View())
	case mn.FilterMode():
		title = fmt.Sprintf("%s [/%s]", title, mn.Filter())
	case mn.Filter() != "":
		title = fmt.Sprintf("%s (/%s)", title, mn.Filter())
	}

	titleStyle := styleTitle
	paneStyle := stylePane
	if active {
		titleStyle = styleActiveTitle
		paneStyle = styleActivePane
	}

	innerHeight := height - 2 // borders
	innerWidth := width - 4   // borders + padding
	if innerHeight < 2 {
		innerHeight = 2
	}
	if innerWidth < 4 {
		innerWidth = 4
	}

	items := mn.FilteredItems()
	cursor := mn.Cursor()

	visible := innerHeight - 1 // one row for the title
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}
	end := offset + visible
	if end > len(items) {
		end = len(items)
	}

	lines := []string{titleStyle.Render(truncate(title, innerWidth))}
	for i := offset; i < end; i++ {
		label := truncate(items[i], innerWidth-2)
		switch {
		case mn.Loading():
			lines = append(lines, "  "+styleLoading.Render(label))
		case i == cursor && active:
			lines = append(lines, "> "+styleSelected.Render(label))
		case i == cursor:
			lines = append(lines, "> "+label)
		default:
			lines = append(lines, "  "+label)
		}
	}

	content := strings.Join(lines, "\n")
	return paneStyle.Width(innerWidth + 2).Height(innerHeight).Render(content)
}

func (m *Model) popupView() string {
	rows := []string{stylePopupTitle.Render("Select Context"), ""}
	for i, item := range m.contextItems {
		label := item
		if item == menu.Placeholder {
			label = styleLoading.Render(item)
		}
		if i == m.contextCursor {
			rows = append(rows, stylePopupSelected.Render(">> "+label))
		} else {
			rows = append(rows, "   "+label)
		}
	}
	box := stylePopup.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// truncate cuts a label to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
