package kubectl

import "context"

// Client is the interface for cluster operations. Everything goes through the
// kubectl CLI; there is no API client.
type Client interface {
	// Metadata operations
	Namespaces(ctx context.Context) ([]string, error)
	APIResources(ctx context.Context) ([]string, error)

	// Resource listing
	Resources(ctx context.Context, namespace, kind string) ([]string, error)

	// Context operations
	Contexts(ctx context.Context) ([]string, error)
	UseContext(ctx context.Context, name string) error
}

// PriorityAPIResources are well-known kinds pinned to the top of the kind
// list, ahead of whatever the cluster reports.
var PriorityAPIResources = []string{
	"pods",
	"services",
	"configmaps",
	"secrets",
	"persistentvolumeclaims",
	"ingresses",
	"nodes",
	"deployments",
	"statefulsets",
	"daemonsets",
	"storageclasses",
}
