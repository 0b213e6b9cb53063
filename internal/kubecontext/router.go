package kubecontext

import (
	"strings"

	"github.com/kognitos/mission-control/internal/urlparse"
)

// Router resolves a pasted application URL to a namespace and, when the URL
// identifies a known environment, switches the active kube context to match.
type Router struct {
	Registry *Registry
	// Patterns maps an environment name to the substring identifying its
	// contexts (see config.DefaultEnvContextPatterns).
	Patterns map[string]string
}

// NewRouter wires a Router over the given registry and pattern map.
func NewRouter(registry *Registry, patterns map[string]string) *Router {
	return &Router{Registry: registry, Patterns: patterns}
}

// ResolveAndSwitch parses url and returns the namespace to browse.
//
// When the URL does not parse, defaultNamespace is returned and the active
// context is left alone. When it does, the first context whose name contains
// the environment's pattern becomes current; contexts are scanned in the
// registry's listing order, so the first substring match wins even if a
// longer match exists further down. A failed switch is ignored: the resolved
// namespace is still the right place to look once the operator fixes their
// kubeconfig.
func (r *Router) ResolveAndSwitch(url, defaultNamespace string) string {
	desc := urlparse.Parse(url)
	if desc == nil {
		return defaultNamespace
	}

	pattern, ok := r.Patterns[string(desc.Env)]
	if ok && pattern != "" {
		contexts, _ := r.Registry.ListContexts()
		for _, name := range contexts {
			if strings.Contains(name, pattern) {
				r.Registry.Switch(name)
				break
			}
		}
	}

	return desc.Namespace
}
