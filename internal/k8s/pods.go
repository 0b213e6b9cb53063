package k8s

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BackingPodLabel is the label the operators stamp on the workload pod that
// serves a BookConnection.
const BackingPodLabel = "bookconnection.kognitos.com/name"

// DefaultLogTailLines bounds how much of a pod log one request pulls.
const DefaultLogTailLines = 500

// PodSummary identifies the backing pod of a BookConnection.
type PodSummary struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Phase     string `json:"phase"`
}

// FindPod returns the pod backing the named BookConnection, located via the
// BackingPodLabel selector, or nil when no pod matches. When several pods
// match, the first one in the API's listing order is taken; that order is
// not guaranteed stable, which is acceptable because a connection normally
// has at most one backing pod.
func (a *Accessor) FindPod(ctx context.Context, resourceName, namespace string) (*PodSummary, error) {
	c, err := a.connect()
	if err != nil {
		return nil, err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: fmt.Sprintf("%s=%s", BackingPodLabel, resourceName),
	})
	if err != nil {
		return nil, classifyError(err)
	}

	if len(pods.Items) == 0 {
		return nil, nil
	}

	pod := pods.Items[0]
	phase := string(pod.Status.Phase)
	if phase == "" {
		phase = "Unknown"
	}

	return &PodSummary{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Phase:     phase,
	}, nil
}

// PodLogs returns the last tailLines lines of the pod's log. tailLines <= 0
// falls back to DefaultLogTailLines.
func (a *Accessor) PodLogs(ctx context.Context, name, namespace string, tailLines int64) (string, error) {
	if tailLines <= 0 {
		tailLines = DefaultLogTailLines
	}

	c, err := a.connect()
	if err != nil {
		return "", err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	raw, err := c.clientset.CoreV1().Pods(namespace).
		GetLogs(name, &corev1.PodLogOptions{TailLines: &tailLines}).
		Do(ctx).Raw()
	if err != nil {
		return "", classifyError(err)
	}

	return string(raw), nil
}
