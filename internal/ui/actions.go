package ui

import (
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// resource is the (namespace, kind, name) triple a shell action applies to.
type resource struct {
	namespace string
	kind      string
	name      string
}

const batcatStyle = " --paging always --style numbers"

// actionTemplates maps action shortcuts to shell command templates. The
// placeholders are substituted from the addressed resource before the
// command is handed to the shell with the UI suspended.
var actionTemplates = map[string]string{
	"ctrl+y": "kubectl -n {namespace} get {api_resource} {resource} -o yaml | batcat -l yaml",
	"ctrl+d": "kubectl -n {namespace} describe {api_resource} {resource} | batcat -l yaml",
	"ctrl+e": "kubectl -n {namespace} edit {api_resource} {resource}",
	"ctrl+l": "kubectl -n {namespace} logs {resource} | hl",
	"ctrl+x": "kubectl -n {namespace} exec -it {resource} -- sh",
	"ctrl+n": "kubectl -n {namespace} debug {resource} -it --image=nicolaka/netshoot",
	"ctrl+a": "kubectl -n {namespace} logs {resource} -c istio-proxy | jaq -Rc 'fromjson? | .' --sort-keys | hl",
	"ctrl+p": "kubectl -n {namespace} exec -it {resource} -c istio-proxy -- bash",
}

// buildShellCommand instantiates a template for the given resource.
func buildShellCommand(template string, r resource) string {
	cmd := strings.NewReplacer(
		"{namespace}", r.namespace,
		"{api_resource}", r.kind,
		"{resource}", r.name,
	).Replace(template)
	if strings.Contains(cmd, "batcat") {
		cmd += batcatStyle
	}
	return cmd
}

// deleteCommand builds the delete action for the given resource.
func deleteCommand(r resource) string {
	return fmt.Sprintf("kubectl -n %s delete %s %s", r.namespace, r.kind, r.name)
}

// execShellCmd suspends the TUI, runs the command interactively, and resumes
// unconditionally regardless of its exit status.
func execShellCmd(command string, refresh bool) tea.Cmd {
	return tea.ExecProcess(exec.Command("sh", "-c", command), func(error) tea.Msg {
		return actionFinishedMsg{refresh: refresh}
	})
}

// firstField returns the first whitespace-separated column of a row.
func firstField(row string) string {
	if fields := strings.Fields(row); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
