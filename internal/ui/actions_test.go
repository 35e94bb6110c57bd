package ui

import "testing"

func TestBuildShellCommand(t *testing.T) {
	r := resource{namespace: "default", kind: "pods", name: "web-1"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			"all placeholders substituted",
			"kubectl -n {namespace} get {api_resource} {resource} -o yaml",
			"kubectl -n default get pods web-1 -o yaml",
		},
		{
			"batcat commands get the style suffix",
			actionTemplates["ctrl+y"],
			"kubectl -n default get pods web-1 -o yaml | batcat -l yaml --paging always --style numbers",
		},
		{
			"non-batcat commands stay as built",
			actionTemplates["ctrl+x"],
			"kubectl -n default exec -it web-1 -- sh",
		},
		{
			"repeated placeholder",
			"echo {resource} {resource}",
			"echo web-1 web-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildShellCommand(tt.template, r); got != tt.want {
				t.Errorf("buildShellCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteCommand(t *testing.T) {
	r := resource{namespace: "kube-system", kind: "configmaps", name: "coredns"}
	want := "kubectl -n kube-system delete configmaps coredns"
	if got := deleteCommand(r); got != want {
		t.Errorf("deleteCommand() = %q, want %q", got, want)
	}
}

func TestFirstField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"web-1   1/1   Running   0   5d", "web-1"},
		{"web-1", "web-1"},
		{"   padded   row", "padded"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := firstField(tt.in); got != tt.want {
			t.Errorf("firstField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
