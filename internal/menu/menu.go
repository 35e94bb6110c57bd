// Package menu implements the selectable list backing each pane: an ordered
// item set, a live case-insensitive substring filter, and a cursor that is
// always either unset or a valid index into the filtered view.
package menu

import "strings"

// Placeholder is the single synthetic item shown while a list is loading.
const Placeholder = "loading..."

// Menu is one selectable list. The cursor indexes the filtered view; -1
// means no selection.
type Menu struct {
	Title string

	items      []string
	cursor     int
	filter     string
	filterMode bool
	loading    bool
}

// New creates a menu with the given items, selecting the first one if any.
func New(title string, items []string) *Menu {
	m := &Menu{Title: title, items: items, cursor: -1}
	if len(items) > 0 {
		m.cursor = 0
	}
	return m
}

// NewLoading creates a menu that starts in the loading state.
func NewLoading(title string) *Menu {
	m := New(title, []string{Placeholder})
	m.loading = true
	return m
}

// FilteredItems returns the current view: the placeholder while loading,
// otherwise the case-insensitive substring matches of the filter. The
// underlying items are never mutated by filtering.
func (m *Menu) FilteredItems() []string {
	if m.loading {
		return []string{Placeholder}
	}
	if m.filter == "" {
		return m.items
	}
	needle := strings.ToLower(m.filter)
	var filtered []string
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SelectedItem returns the item under the cursor. Loading lists have no
// selection, and the placeholder is never returned.
func (m *Menu) SelectedItem() (string, bool) {
	if m.loading || m.cursor < 0 {
		return "", false
	}
	items := m.FilteredItems()
	if m.cursor >= len(items) || items[m.cursor] == Placeholder {
		return "", false
	}
	return items[m.cursor], true
}

// SetItems replaces the items wholesale and clears the loading state. The
// cursor is kept when it still indexes the new filtered view, clamped to the
// last element when the view shrank past it, reset to the first element when
// previously unset, and unset when the view is empty.
func (m *Menu) SetItems(items []string) {
	prev := m.cursor
	m.items = items
	m.loading = false

	n := len(m.FilteredItems())
	switch {
	case n == 0:
		m.cursor = -1
	case prev >= 0 && prev < n:
		m.cursor = prev
	case prev >= n:
		m.cursor = n - 1
	default:
		m.cursor = 0
	}
}

// SetLoading puts the menu into the loading state with the placeholder item.
func (m *Menu) SetLoading() {
	m.loading = true
	m.items = []string{Placeholder}
	m.cursor = 0
}

// Next moves the cursor down, wrapping around the filtered view.
func (m *Menu) Next() {
	if m.loading {
		return
	}
	items := m.FilteredItems()
	if len(items) == 0 {
		return
	}
	if m.cursor < 0 || m.cursor >= len(items)-1 {
		m.cursor = 0
		return
	}
	m.cursor++
}

// Previous moves the cursor up, wrapping around the filtered view.
func (m *Menu) Previous() {
	if m.loading {
		return
	}
	items := m.FilteredItems()
	if len(items) == 0 {
		return
	}
	if m.cursor <= 0 {
		m.cursor = len(items) - 1
		return
	}
	m.cursor--
}

// Home moves the cursor to the first filtered item.
func (m *Menu) Home() bool {
	if m.loading || len(m.FilteredItems()) == 0 {
		return false
	}
	m.cursor = 0
	return true
}

// EnterFilterMode starts filter-text capture, discarding any prior filter.
func (m *Menu) EnterFilterMode() {
	m.filterMode = true
	m.filter = ""
	m.resolveCursor()
}

// ExitFilterMode stops capture and clears the filter text.
func (m *Menu) ExitFilterMode() {
	m.filterMode = false
	m.filter = ""
	m.resolveCursor()
}

// LeaveFilterEntry stops capture but keeps the typed text as an active
// filter.
func (m *Menu) LeaveFilterEntry() {
	m.filterMode = false
}

// SetFilter replaces the filter text and re-resolves the cursor.
func (m *Menu) SetFilter(text string) {
	m.filter = text
	m.resolveCursor()
}

// resolveCursor re-resolves the cursor after a filter change: keep the index
// when it still falls within the filtered view, else select the first item,
// else none.
func (m *Menu) resolveCursor() {
	n := len(m.FilteredItems())
	switch {
	case n == 0:
		m.cursor = -1
	case m.cursor < 0 || m.cursor >= n:
		m.cursor = 0
	}
}

// Cursor returns the index into the filtered view, or -1.
func (m *Menu) Cursor() int { return m.cursor }

// Filter returns the active filter text.
func (m *Menu) Filter() string { return m.filter }

// FilterMode reports whether the menu is capturing filter text.
func (m *Menu) FilterMode() bool { return m.filterMode }

// Loading reports whether the menu is showing the loading placeholder.
func (m *Menu) Loading() bool { return m.loading }
