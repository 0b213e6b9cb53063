// Package kubecontext reads and switches the active context of a kubeconfig
// file, and routes pasted application URLs to the matching context.
package kubecontext

import (
	"os"
	"path/filepath"
	"sort"

	"k8s.io/client-go/tools/clientcmd"
)

// Registry lists and switches kube contexts by rewriting a kubeconfig file.
// It never creates or deletes contexts.
type Registry struct {
	// Path to the kubeconfig file. Empty means ~/.kube/config.
	Path string
}

// NewRegistry returns a Registry over the given kubeconfig path, falling back
// to the standard location when the path is empty.
func NewRegistry(path string) *Registry {
	if path == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(homeDir, ".kube", "config")
		}
	}
	return &Registry{Path: path}
}

// ListContexts returns all context names, sorted, and the current context.
// A missing or malformed kubeconfig yields (nil, "") rather than an error:
// the dashboard shows an empty dropdown instead of failing the request.
//
// clientcmd stores contexts in a map, so the file's own ordering is not
// recoverable; sorting keeps the listing stable across calls.
func (r *Registry) ListContexts() ([]string, string) {
	cfg, err := clientcmd.LoadFromFile(r.Path)
	if err != nil {
		return nil, ""
	}

	names := make([]string, 0, len(cfg.Contexts))
	for name := range cfg.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, cfg.CurrentContext
}

// Switch sets the kubeconfig's current-context to name and writes the file
// back, preserving every other field. The name is not validated against the
// known contexts; that is the caller's responsibility.
//
// This is a plain read-modify-write: two concurrent switches race and the
// last writer wins. Accepted for a single-operator tool.
func (r *Registry) Switch(name string) bool {
	cfg, err := clientcmd.LoadFromFile(r.Path)
	if err != nil {
		return false
	}

	cfg.CurrentContext = name

	if err := clientcmd.WriteToFile(*cfg, r.Path); err != nil {
		return false
	}

	return true
}
