// Package dashboard is the boundary the presentation layer talks to. Every
// operation returns a value that is safe to render: cluster failures are
// absorbed into empty listings, nil results or inline error text, never
// propagated as errors. The classified cause is still available to callers
// that want to offer a re-login (see LooksLikeAuthError).
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/kognitos/mission-control/internal/auth"
	"github.com/kognitos/mission-control/internal/config"
	"github.com/kognitos/mission-control/internal/k8s"
	"github.com/kognitos/mission-control/internal/kubecontext"
)

// Service bundles the core components behind the render-safe contract.
type Service struct {
	Accessor *k8s.Accessor
	Registry *kubecontext.Registry
	Router   *kubecontext.Router

	defaultNamespace string
}

// New wires a Service from the loaded configuration.
func New(cfg *config.Config) *Service {
	registry := kubecontext.NewRegistry(cfg.KubeconfigPath)
	return &Service{
		Accessor:         k8s.NewAccessor(cfg.KubeconfigPath, time.Duration(cfg.Timeout)*time.Second),
		Registry:         registry,
		Router:           kubecontext.NewRouter(registry, cfg.EnvContextPatterns),
		defaultNamespace: cfg.DefaultNamespace,
	}
}

// DefaultNamespace is the namespace browsed when nothing else was resolved.
func (s *Service) DefaultNamespace() string {
	return s.defaultNamespace
}

// ListResources returns the rows for a kind in a namespace. Any failure
// yields an empty slice: the dashboard renders "no resources found" whether
// the namespace is truly empty or the cluster was unreachable. That
// collapse is deliberate; use LooksLikeAuthError on the side channel of a
// direct Accessor call when the distinction matters.
func (s *Service) ListResources(ctx context.Context, kind k8s.Kind, namespace string) []k8s.Row {
	rows, err := s.Accessor.List(ctx, kind, namespace)
	if err != nil {
		return nil
	}
	return rows
}

// GetManifest returns the resource manifest as YAML text. Failures come back
// through the same return value as error text, so the viewer renders them
// inline exactly like a manifest.
func (s *Service) GetManifest(ctx context.Context, kind k8s.Kind, namespace, name string) string {
	manifest, err := s.Accessor.Manifest(ctx, kind, namespace, name)
	if err != nil {
		return fmt.Sprintf("Error fetching manifest: %v", err)
	}
	return manifest
}

// ListContexts returns the kube context names and the current one.
func (s *Service) ListContexts() ([]string, string) {
	return s.Registry.ListContexts()
}

// SwitchContext makes name the current kube context. False means the
// kubeconfig could not be read or written.
func (s *Service) SwitchContext(name string) bool {
	return s.Registry.Switch(name)
}

// ResolveAndSwitch derives the namespace from a pasted application URL and
// switches to the matching context. Unmatched URLs fall back to the
// configured default namespace with the context untouched.
func (s *Service) ResolveAndSwitch(url string) string {
	return s.Router.ResolveAndSwitch(url, s.defaultNamespace)
}

// FindPod returns the backing pod of a BookConnection, or nil when there is
// none or the lookup failed.
func (s *Service) FindPod(ctx context.Context, name, namespace string) *k8s.PodSummary {
	pod, err := s.Accessor.FindPod(ctx, name, namespace)
	if err != nil {
		return nil
	}
	return pod
}

// PodMetrics returns the pod's converted usage, or nil when the metrics
// capability is unavailable for any reason.
func (s *Service) PodMetrics(ctx context.Context, name, namespace string) *k8s.PodMetrics {
	metrics, err := s.Accessor.PodUsage(ctx, name, namespace)
	if err != nil {
		return nil
	}
	return metrics
}

// PodLogs returns the pod log tail, an inline error text on failure, and a
// fixed marker when the pod has produced no output.
func (s *Service) PodLogs(ctx context.Context, name, namespace string, tailLines int64) string {
	logs, err := s.Accessor.PodLogs(ctx, name, namespace, tailLines)
	if err != nil {
		return fmt.Sprintf("Error fetching logs: %v", err)
	}
	if logs == "" {
		return "No logs available"
	}
	return logs
}

// LooksLikeAuthError reports whether an absorbed failure was an
// authentication or authorization problem. Classified cluster errors are
// pattern-matched; anything opaque (for example output of the external
// login script) falls back to substring sniffing.
func LooksLikeAuthError(err error) bool {
	if err == nil {
		return false
	}
	if k8s.IsAuthError(err) {
		return true
	}
	return auth.LooksLikeAuthErrorText(err.Error())
}
