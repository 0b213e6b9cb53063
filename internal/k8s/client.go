// Package k8s queries cluster resources and normalizes them into the row
// model the dashboard renders. Custom kinds (Book, BookConnection,
// TriggerInstance) go through the dynamic client; Deployments, Secrets and
// Pods use the typed clientset.
package k8s

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsclient "k8s.io/metrics/pkg/client/clientset/versioned"
)

// Kind names a browsable resource type.
type Kind string

const (
	KindBook            Kind = "Book"
	KindBookConnection  Kind = "BookConnection"
	KindTriggerInstance Kind = "TriggerInstance"
	KindDeployment      Kind = "Deployment"
	KindSecret          Kind = "Secret"
	KindPod             Kind = "Pod"
)

// kindResources maps each kind to the GroupVersionResource the dynamic
// client queries. The custom kinds live in the kognitos.com CRD group.
var kindResources = map[Kind]schema.GroupVersionResource{
	KindBook:            {Group: "kognitos.com", Version: "v1alpha1", Resource: "books"},
	KindBookConnection:  {Group: "kognitos.com", Version: "v1alpha1", Resource: "bookconnections"},
	KindTriggerInstance: {Group: "kognitos.com", Version: "v1alpha1", Resource: "triggerinstances"},
	KindDeployment:      {Group: "apps", Version: "v1", Resource: "deployments"},
	KindSecret:          {Group: "", Version: "v1", Resource: "secrets"},
	KindPod:             {Group: "", Version: "v1", Resource: "pods"},
}

// Accessor performs cluster reads. Every call connects from scratch against
// whatever context is current in the kubeconfig at that moment, so a context
// switch takes effect on the very next request without a restart. Nothing is
// cached, which also means there is no shared mutable state to guard.
type Accessor struct {
	KubeconfigPath string
	Timeout        time.Duration

	// connect builds the per-call clients; tests swap in fakes.
	connect func() (*clients, error)
}

// clients bundles the three client flavors one request may need.
type clients struct {
	clientset kubernetes.Interface
	dynamic   dynamic.Interface
	metrics   metricsclient.Interface
}

// NewAccessor returns an Accessor over the given kubeconfig.
func NewAccessor(kubeconfigPath string, timeout time.Duration) *Accessor {
	a := &Accessor{KubeconfigPath: kubeconfigPath, Timeout: timeout}
	a.connect = a.dial
	return a
}

// dial loads the kubeconfig and builds fresh clients bound to its current
// context.
func (a *Accessor) dial() (*clients, error) {
	restConfig, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		&clientcmd.ClientConfigLoadingRules{ExplicitPath: a.KubeconfigPath},
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
	if err != nil {
		return nil, &APIError{
			Type:    ErrMalformed,
			Message: fmt.Sprintf("failed to load kubeconfig: %v", err),
			Err:     err,
		}
	}

	restConfig.Timeout = a.Timeout

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to create Kubernetes client: %w", err))
	}

	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to create dynamic client: %w", err))
	}

	metricsClient, err := metricsclient.NewForConfig(restConfig)
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to create metrics client: %w", err))
	}

	return &clients{
		clientset: clientset,
		dynamic:   dynamicClient,
		metrics:   metricsClient,
	}, nil
}

// withTimeout applies the accessor's per-call timeout when one is set.
func (a *Accessor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Timeout > 0 {
		return context.WithTimeout(ctx, a.Timeout)
	}
	return ctx, func() {}
}
