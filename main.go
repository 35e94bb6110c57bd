package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/devpopsdotin/kubels/internal/cache"
	"github.com/devpopsdotin/kubels/internal/kubectl"
	"github.com/devpopsdotin/kubels/internal/logger"
	"github.com/devpopsdotin/kubels/internal/ui"
)

var (
	kubectlBin string
	logFile    string
)

func main() {
	root := &cobra.Command{
		Use:           "kubels",
		Short:         "Interactive terminal browser for cluster resources",
		Long:          "kubels drills through namespaces, resource kinds and resources,\ndriving kubectl underneath for every lookup and action.",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&kubectlBin, "kubectl", "kubectl", "kubectl binary to invoke")
	root.Flags().StringVar(&logFile, "log-file", "", "debug log file (default <cache-dir>/kubels.log)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cacheDir := resolveCacheDir()

	path := logFile
	if path == "" && cacheDir != "" {
		path = filepath.Join(cacheDir, "kubels.log")
	}
	// Logging is best-effort; the TUI must come up regardless, and stray
	// stderr writes would corrupt it.
	if path == "" || logger.Init(path) != nil {
		logger.Silence()
	}

	client := kubectl.NewKubectlClient(kubectlBin)
	store := cache.Open(cacheDir)

	p := tea.NewProgram(ui.NewModel(client, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	store.Flush()
	return nil
}

// resolveCacheDir returns the per-user cache directory, or empty when none
// can be created; the cache then runs memory-only.
func resolveCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(base, "kubels")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	return dir
}
