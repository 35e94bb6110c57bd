package ui

import "time"

// Bubble Tea messages

// tickMsg drives the periodic silent resource refresh
type tickMsg time.Time

// namespacesMsg carries a fetched namespace list
type namespacesMsg struct {
	items []string
}

// apiResourcesMsg carries a fetched resource-kind list
type apiResourcesMsg struct {
	items []string
}

// resourcesMsg carries a fetched resource listing stamped with the fetch
// version it was launched under
type resourcesMsg struct {
	items   []string
	fetchID int
}

// contextsMsg carries the context list for the switch-context popup
type contextsMsg struct {
	items []string
}

// actionFinishedMsg indicates a suspended shell action has completed and the
// UI has resumed; refresh requests an immediate resource refetch
type actionFinishedMsg struct {
	refresh bool
}
