package kubectl

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"
	"k8s.io/apimachinery/pkg/util/sets"
)

// KubectlClient implements Client by shelling out to the kubectl binary.
type KubectlClient struct {
	Bin string // kubectl binary path
}

// NewKubectlClient creates a new kubectl-based client
func NewKubectlClient(bin string) *KubectlClient {
	if bin == "" {
		bin = "kubectl"
	}
	return &KubectlClient{Bin: bin}
}

// runLines executes kubectl and returns trimmed, non-empty stdout lines.
// A non-zero exit resolves to an empty result: the caller sees "no data",
// never a cluster error.
func (c *KubectlClient) runLines(ctx context.Context, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, c.Bin, args...)
	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			slog.Debug("kubectl exited non-zero", "args", args, "error", err)
			return nil, nil
		}
		return nil, fmt.Errorf("running %s: %w", c.Bin, err)
	}
	return SplitLines(out), nil
}

// Namespaces lists all namespaces, with the active context's namespace (if
// any) moved to the front.
func (c *KubectlClient) Namespaces(ctx context.Context) ([]string, error) {
	lines, err := c.runLines(ctx, "get", "namespaces", "-o", "json")
	if err != nil {
		return nil, err
	}
	all := namespaceNames(strings.Join(lines, "\n"))
	return OrderNamespaces(all, c.currentNamespace(ctx)), nil
}

// currentNamespace reads the namespace of the active context from the
// minified kubeconfig view. Empty when unset or on any failure.
func (c *KubectlClient) currentNamespace(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, c.Bin, "config", "view", "--minify", "-o", "json")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return gjson.GetBytes(out, "contexts.0.context.namespace").String()
}

// APIResources lists gettable resource kinds, priority kinds first.
func (c *KubectlClient) APIResources(ctx context.Context) ([]string, error) {
	lines, err := c.runLines(ctx, "api-resources", "--no-headers", "--verbs=get")
	if err != nil {
		return nil, err
	}
	reported := make([]string, 0, len(lines))
	for _, line := range lines {
		if fields := strings.Fields(line); len(fields) > 0 {
			reported = append(reported, fields[0])
		}
	}
	return MergeAPIResources(reported), nil
}

// Resources returns the tabular kubectl output for a kind in a namespace.
func (c *KubectlClient) Resources(ctx context.Context, namespace, kind string) ([]string, error) {
	return c.runLines(ctx, "-n", namespace, "get", kind,
		"--no-headers", "--ignore-not-found")
}

// Contexts lists the available kubeconfig contexts.
func (c *KubectlClient) Contexts(ctx context.Context) ([]string, error) {
	return c.runLines(ctx, "config", "get-contexts", "-o", "name")
}

// UseContext switches the active kubeconfig context. Deliberately synchronous
// at the call site: nothing should proceed while the context changes.
func (c *KubectlClient) UseContext(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, c.Bin, "config", "use-context", name)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("use-context %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// SplitLines splits subprocess output into trimmed, non-empty lines.
func SplitLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// namespaceNames extracts metadata.name from a kubectl list JSON document.
func namespaceNames(doc string) []string {
	var names []string
	gjson.Get(doc, "items").ForEach(func(_, item gjson.Result) bool {
		if name := item.Get("metadata.name").String(); name != "" {
			names = append(names, name)
		}
		return true
	})
	return names
}

// OrderNamespaces moves current to the front of all, deduplicated. When
// current is empty the list is returned as-is.
func OrderNamespaces(all []string, current string) []string {
	if current == "" {
		return all
	}
	result := []string{current}
	for _, ns := range all {
		if ns != current {
			result = append(result, ns)
		}
	}
	return result
}

// MergeAPIResources prepends the priority kinds to the cluster-reported ones,
// deduplicated, preserving first-seen order.
func MergeAPIResources(reported []string) []string {
	seen := sets.New[string]()
	result := make([]string, 0, len(PriorityAPIResources)+len(reported))
	for _, kind := range PriorityAPIResources {
		result = append(result, kind)
		seen.Insert(kind)
	}
	for _, kind := range reported {
		if kind == "" || seen.Has(kind) {
			continue
		}
		result = append(result, kind)
		seen.Insert(kind)
	}
	return result
}
