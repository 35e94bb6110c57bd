package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devpopsdotin/kubels/internal/cache"
	"github.com/devpopsdotin/kubels/internal/kubectl"
	"github.com/devpopsdotin/kubels/internal/menu"
)

// Menu indices; the order matches the on-screen panes.
const (
	idxNamespaces = 0
	idxKinds      = 1
	idxResources  = 2
)

// refreshInterval is the cadence of the silent resource refresh.
const refreshInterval = 2 * time.Second

// pendingFetch tracks the single in-flight resource fetch. Cancellation is
// best-effort; the fetchID stamp is what actually guards against stale
// results.
type pendingFetch struct {
	cancel context.CancelFunc
	id     int
}

// Model is the main Bubble Tea model: three linked menus, the fetch version
// counter, and the resource cache. All mutation happens on the Update
// goroutine.
type Model struct {
	client kubectl.Client
	store  *cache.Store

	menus  [3]*menu.Menu
	active int

	fetchID int
	pending *pendingFetch

	filterInput textinput.Model

	showContextPopup bool
	contextItems     []string
	contextCursor    int

	skipAPIFetch bool

	width  int
	height int
}

// NewModel builds the model, seeding the namespace and kind menus from the
// simple disk caches when present so the UI is usable before the first
// fetch lands.
func NewModel(client kubectl.Client, store *cache.Store) *Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 64
	ti.Width = 24

	m := &Model{
		client:      client,
		store:       store,
		filterInput: ti,
	}

	if items, ok := store.ReadList(cache.NamespacesList); ok {
		m.menus[idxNamespaces] = menu.New("Namespaces", items)
	} else {
		m.menus[idxNamespaces] = menu.NewLoading("Namespaces")
	}
	if items, ok := store.ReadList(cache.APIResourcesList); ok {
		m.menus[idxKinds] = menu.New("API Resources", items)
		m.skipAPIFetch = true
	} else {
		m.menus[idxKinds] = menu.NewLoading("API Resources")
	}
	m.menus[idxResources] = menu.New("Resources", nil)

	return m
}

// Init launches the metadata fetches (the kind fetch is skipped when its
// cache was warm), the refresh ticker, and, when both metadata menus came up
// warm, the initial resource fetch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{fetchNamespacesCmd(m.client, m.store), tickCmd()}
	if !m.skipAPIFetch {
		cmds = append(cmds, fetchAPIResourcesCmd(m.client, m.store))
	}
	if !m.menus[idxNamespaces].Loading() && !m.menus[idxKinds].Loading() {
		if cmd := m.triggerResourceFetch(false); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) activeMenu() *menu.Menu {
	return m.menus[m.active]
}

func (m *Model) nextMenu() {
	m.active = (m.active + 1) % len(m.menus)
}

func (m *Model) previousMenu() {
	if m.active == 0 {
		m.active = len(m.menus) - 1
	} else {
		m.active--
	}
}

// fetchInFlight reports whether the tracked fetch is still the one the
// current version would accept.
func (m *Model) fetchInFlight() bool {
	return m.pending != nil && m.pending.id == m.fetchID
}

// addressedResource resolves the (namespace, kind, resource-name) triple
// implied by the three selections. The name is the first column of the
// selected row.
func (m *Model) addressedResource() (resource, bool) {
	ns, ok := m.menus[idxNamespaces].SelectedItem()
	if !ok {
		return resource{}, false
	}
	kind, ok := m.menus[idxKinds].SelectedItem()
	if !ok {
		return resource{}, false
	}
	row, ok := m.menus[idxResources].SelectedItem()
	if !ok {
		return resource{}, false
	}
	name := firstField(row)
	if name == "" {
		return resource{}, false
	}
	return resource{namespace: ns, kind: kind, name: name}, true
}

// triggerResourceFetch starts (or short-circuits) a resource-list fetch for
// the current namespace/kind selection.
//
// Silent triggers never show the loading placeholder and always bypass the
// cache so out-of-band cluster changes are picked up; they are dropped
// entirely while a fetch is in flight or the list is loading. Explicit
// triggers may be satisfied synchronously by a fresh cache entry. Every
// launch bumps the version counter and cancels the previous fetch.
func (m *Model) triggerResourceFetch(silent bool) tea.Cmd {
	if silent && (m.fetchInFlight() || m.menus[idxResources].Loading()) {
		return nil
	}

	ns, nsOK := m.menus[idxNamespaces].SelectedItem()
	kind, kindOK := m.menus[idxKinds].SelectedItem()
	if !nsOK || !kindOK {
		m.menus[idxResources].SetItems(nil)
		return nil
	}

	m.fetchID++

	if !silent {
		if lines, ok := m.store.Lookup(ns, kind); ok {
			m.menus[idxResources].SetItems(lines)
			return nil
		}
		m.menus[idxResources].SetLoading()
	}

	if m.pending != nil {
		m.pending.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.pending = &pendingFetch{cancel: cancel, id: m.fetchID}
	return fetchResourcesCmd(ctx, m.client, ns, kind, m.fetchID)
}

// refreshMetadata performs the full reload: both cache tiers cleared, all
// menus back to loading, version bumped so any in-flight result is
// discarded, and both metadata fetches relaunched.
func (m *Model) refreshMetadata() tea.Cmd {
	m.fetchID++
	m.store.Clear()
	m.menus[idxNamespaces].SetLoading()
	m.menus[idxKinds].SetLoading()
	m.menus[idxResources].SetItems(nil)
	return tea.Batch(
		fetchNamespacesCmd(m.client, m.store),
		fetchAPIResourcesCmd(m.client, m.store),
	)
}

func (m *Model) openContextPopup() tea.Cmd {
	m.showContextPopup = true
	m.contextItems = []string{menu.Placeholder}
	m.contextCursor = 0
	return fetchContextsCmd(m.client)
}
