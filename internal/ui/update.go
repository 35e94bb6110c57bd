package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devpopsdotin/kubels/internal/menu"
)

// inputOutcome collects the side effects of one key press so the refetch
// decision can be made in one place.
type inputOutcome struct {
	selectionChanged bool
	forceRefresh     bool
	quit             bool
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if !m.menus[idxResources].Loading() {
			if cmd := m.triggerResourceFetch(true); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case namespacesMsg:
		m.menus[idxNamespaces].SetItems(msg.items)
		if !m.menus[idxKinds].Loading() {
			return m, m.triggerResourceFetch(false)
		}

	case apiResourcesMsg:
		m.menus[idxKinds].SetItems(msg.items)
		if !m.menus[idxNamespaces].Loading() {
			return m, m.triggerResourceFetch(false)
		}

	case resourcesMsg:
		m.applyResources(msg)

	case contextsMsg:
		m.contextItems = msg.items
		if len(m.contextItems) > 0 {
			m.contextCursor = 0
		} else {
			m.contextCursor = -1
		}

	case actionFinishedMsg:
		if msg.refresh {
			return m, m.triggerResourceFetch(false)
		}

	default:
		// Keep the filter input's cursor blinking while capturing text.
		if m.activeMenu().FilterMode() {
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// applyResources applies a resource-list result, but only when its version
// stamp still matches the counter: anything else belongs to a selection the
// user has since abandoned.
func (m *Model) applyResources(msg resourcesMsg) {
	if m.pending != nil && m.pending.id == msg.fetchID {
		m.pending = nil
	}
	if msg.fetchID != m.fetchID {
		slog.Debug("discarding stale resource result",
			"stamp", msg.fetchID, "current", m.fetchID)
		return
	}

	ns, nsOK := m.menus[idxNamespaces].SelectedItem()
	kind, kindOK := m.menus[idxKinds].SelectedItem()
	if nsOK && kindOK {
		m.store.Put(ns, kind, msg.items)
	}

	m.menus[idxResources].SetItems(msg.items)
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showContextPopup {
		return m, m.handlePopupKey(key)
	}

	prevActive := m.active
	outcome, cmd := m.processKey(key)
	if outcome.quit {
		return m, tea.Quit
	}

	cmds := []tea.Cmd{cmd}
	// A selection change refetches resources only when it happened on the
	// namespace or kind list; moving inside the resource list changes
	// nothing upstream.
	if outcome.selectionChanged && (prevActive == idxNamespaces || prevActive == idxKinds) {
		cmds = append(cmds, m.triggerResourceFetch(false))
	}
	if outcome.forceRefresh {
		cmds = append(cmds, m.triggerResourceFetch(false))
	}
	return m, tea.Batch(cmds...)
}

// processKey routes one key press. Navigation keys behave the same whether
// or not a filter is being captured and are never swallowed as filter text.
func (m *Model) processKey(key tea.KeyMsg) (inputOutcome, tea.Cmd) {
	var out inputOutcome

	switch key.String() {
	case "down":
		m.activeMenu().Next()
		out.selectionChanged = true
		return out, nil
	case "up":
		m.activeMenu().Previous()
		out.selectionChanged = true
		return out, nil
	case "home":
		out.selectionChanged = m.activeMenu().Home()
		return out, nil
	case "tab", "right":
		m.nextMenu()
		return out, m.syncFilterInput()
	case "shift+tab", "left":
		m.previousMenu()
		return out, m.syncFilterInput()
	case "end":
		// recognized as navigation, currently unbound
		return out, nil
	}

	if m.activeMenu().FilterMode() {
		return m.processFilterKey(key)
	}
	return m.processNormalKey(key)
}

// syncFilterInput re-seeds the shared text input from the newly active menu
// so each list keeps its own filter text across pane switches. The input only
// captures keys for the active menu; inactive menus hold their text in
// Menu.Filter.
func (m *Model) syncFilterInput() tea.Cmd {
	if m.activeMenu().FilterMode() {
		m.filterInput.SetValue(m.activeMenu().Filter())
		m.filterInput.CursorEnd()
		return m.filterInput.Focus()
	}
	m.filterInput.Blur()
	return nil
}

func (m *Model) processFilterKey(key tea.KeyMsg) (inputOutcome, tea.Cmd) {
	var out inputOutcome
	active := m.activeMenu()

	switch key.String() {
	case "esc":
		active.ExitFilterMode()
		m.filterInput.Blur()
		out.selectionChanged = true
		return out, nil
	case "enter":
		// Keep the typed text as an active filter, just stop capturing.
		active.LeaveFilterEntry()
		m.filterInput.Blur()
		return out, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(key)
	if active.Filter() != m.filterInput.Value() {
		active.SetFilter(m.filterInput.Value())
		out.selectionChanged = true
	}
	return out, cmd
}

func (m *Model) processNormalKey(key tea.KeyMsg) (inputOutcome, tea.Cmd) {
	var out inputOutcome
	active := m.activeMenu()

	switch key.String() {
	case "q", "ctrl+c":
		out.quit = true

	case "/":
		if !active.Loading() {
			active.EnterFilterMode()
			m.filterInput.Reset()
			return out, m.filterInput.Focus()
		}

	case "j":
		active.Next()
		out.selectionChanged = true
	case "k":
		active.Previous()
		out.selectionChanged = true

	case "esc":
		if active.Filter() != "" {
			active.ExitFilterMode()
			out.selectionChanged = true
		} else {
			out.quit = true
		}

	case "ctrl+s":
		return out, m.openContextPopup()

	case "ctrl+r":
		return out, m.refreshMetadata()

	case "delete":
		if r, ok := m.addressedResource(); ok {
			return out, execShellCmd(deleteCommand(r), true)
		}

	default:
		if template, ok := actionTemplates[key.String()]; ok {
			if r, ok := m.addressedResource(); ok {
				return out, execShellCmd(buildShellCommand(template, r), false)
			}
		}
	}

	return out, nil
}

// handlePopupKey intercepts all input while the context popup is open.
func (m *Model) handlePopupKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.showContextPopup = false

	case "down", "j":
		if n := len(m.contextItems); n > 0 {
			if m.contextCursor < 0 || m.contextCursor >= n-1 {
				m.contextCursor = 0
			} else {
				m.contextCursor++
			}
		}

	case "up", "k":
		if n := len(m.contextItems); n > 0 {
			if m.contextCursor <= 0 {
				m.contextCursor = n - 1
			} else {
				m.contextCursor--
			}
		}

	case "enter":
		if m.contextCursor < 0 || m.contextCursor >= len(m.contextItems) {
			return nil
		}
		name := m.contextItems[m.contextCursor]
		if name == menu.Placeholder {
			return nil
		}
		// Deliberately blocking: nothing may proceed while the active
		// context changes underneath the caches.
		if err := m.client.UseContext(context.Background(), name); err != nil {
			slog.Warn("context switch failed", "context", name, "error", err)
		}
		m.showContextPopup = false
		return m.refreshMetadata()
	}
	return nil
}
