package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devpopsdotin/kubels/internal/cache"
	"github.com/devpopsdotin/kubels/internal/kubectl"
)

// Fetch commands. Each runs on its own goroutine and reports back through
// the program's message queue; a failed fetch resolves to an empty list, so
// the UI shows "no results" instead of an error.

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func fetchNamespacesCmd(c kubectl.Client, store *cache.Store) tea.Cmd {
	return func() tea.Msg {
		items, err := c.Namespaces(context.Background())
		if err != nil {
			slog.Warn("namespace fetch failed", "error", err)
			items = nil
		}
		if len(items) > 0 {
			store.WriteList(cache.NamespacesList, items)
		}
		return namespacesMsg{items: items}
	}
}

func fetchAPIResourcesCmd(c kubectl.Client, store *cache.Store) tea.Cmd {
	return func() tea.Msg {
		items, err := c.APIResources(context.Background())
		if err != nil {
			slog.Warn("api-resource fetch failed", "error", err)
			items = nil
		}
		if len(items) > 0 {
			store.WriteList(cache.APIResourcesList, items)
		}
		return apiResourcesMsg{items: items}
	}
}

func fetchResourcesCmd(ctx context.Context, c kubectl.Client, namespace, kind string, fetchID int) tea.Cmd {
	return func() tea.Msg {
		lines, err := c.Resources(ctx, namespace, kind)
		if err != nil {
			slog.Warn("resource fetch failed",
				"namespace", namespace, "kind", kind, "error", err)
			lines = nil
		}
		return resourcesMsg{items: lines, fetchID: fetchID}
	}
}

func fetchContextsCmd(c kubectl.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := c.Contexts(context.Background())
		if err != nil {
			slog.Warn("context fetch failed", "error", err)
			items = nil
		}
		return contextsMsg{items: items}
	}
}
