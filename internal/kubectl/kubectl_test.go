package kubectl

import (
	"context"
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "pods\n", []string{"pods"}},
		{"blank lines dropped", "pods\n\nservices\n\n\n", []string{"pods", "services"}},
		{"whitespace trimmed", "  pods  \n\tservices\t\n", []string{"pods", "services"}},
		{"no trailing newline", "pods\nservices", []string{"pods", "services"}},
		{"whitespace only", "   \n\t\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines([]byte(tt.in)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamespaceNames(t *testing.T) {
	doc := `{
		"apiVersion": "v1",
		"items": [
			{"metadata": {"name": "default", "uid": "a"}},
			{"metadata": {"name": "kube-system", "uid": "b"}},
			{"metadata": {"uid": "c"}}
		]
	}`
	want := []string{"default", "kube-system"}
	if got := namespaceNames(doc); !reflect.DeepEqual(got, want) {
		t.Errorf("namespaceNames() = %v, want %v", got, want)
	}

	if got := namespaceNames("not json"); got != nil {
		t.Errorf("namespaceNames() on garbage = %v, want nil", got)
	}
}

func TestOrderNamespaces(t *testing.T) {
	tests := []struct {
		name    string
		all     []string
		current string
		want    []string
	}{
		{
			"current moved to front",
			[]string{"default", "kube-system", "monitoring"},
			"monitoring",
			[]string{"monitoring", "default", "kube-system"},
		},
		{
			"already first is not duplicated",
			[]string{"default", "kube-system"},
			"default",
			[]string{"default", "kube-system"},
		},
		{
			"no current leaves order untouched",
			[]string{"default", "kube-system"},
			"",
			[]string{"default", "kube-system"},
		},
		{
			"current absent from list still leads",
			[]string{"default"},
			"staging",
			[]string{"staging", "default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderNamespaces(tt.all, tt.current); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OrderNamespaces(%v, %q) = %v, want %v", tt.all, tt.current, got, tt.want)
			}
		})
	}
}

func TestMergeAPIResources(t *testing.T) {
	got := MergeAPIResources([]string{"pods", "cronjobs", "deployments", "networkpolicies", "cronjobs"})

	// Priority kinds come first in their fixed order.
	for i, kind := range PriorityAPIResources {
		if got[i] != kind {
			t.Fatalf("got[%d] = %q, want priority kind %q", i, got[i], kind)
		}
	}

	// Cluster-only kinds follow in first-seen order, deduplicated.
	rest := got[len(PriorityAPIResources):]
	want := []string{"cronjobs", "networkpolicies"}
	if !reflect.DeepEqual(rest, want) {
		t.Errorf("trailing kinds = %v, want %v", rest, want)
	}
}

func TestMergeAPIResources_EmptyReported(t *testing.T) {
	got := MergeAPIResources(nil)
	if !reflect.DeepEqual(got, PriorityAPIResources) {
		t.Errorf("MergeAPIResources(nil) = %v, want priority kinds only", got)
	}
}

func TestRunLines_MissingBinary(t *testing.T) {
	c := NewKubectlClient("/nonexistent/kubectl-test-binary")
	if _, err := c.Resources(context.Background(), "default", "pods"); err == nil {
		t.Error("expected an error for a missing binary")
	}
	if err := c.UseContext(context.Background(), "prod"); err == nil {
		t.Error("expected an error for a missing binary")
	}
}

func TestRunLines_NonZeroExitIsEmpty(t *testing.T) {
	// "false" exits non-zero without output; that must read as an empty
	// listing, not an error.
	c := NewKubectlClient("false")
	lines, err := c.Resources(context.Background(), "default", "pods")
	if err != nil {
		t.Fatalf("Resources() error = %v, want nil", err)
	}
	if lines != nil {
		t.Errorf("Resources() = %v, want nil", lines)
	}
}

func TestNewKubectlClient_DefaultBin(t *testing.T) {
	if c := NewKubectlClient(""); c.Bin != "kubectl" {
		t.Errorf("Bin = %q, want kubectl", c.Bin)
	}
	if c := NewKubectlClient("/usr/local/bin/kubectl"); c.Bin != "/usr/local/bin/kubectl" {
		t.Errorf("Bin = %q, want the given path", c.Bin)
	}
}
