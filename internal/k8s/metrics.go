package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ContainerMetrics holds one container's usage, already converted to the
// display units the dashboard shows.
type ContainerMetrics struct {
	Name   string `json:"name"`
	CPU    string `json:"cpu"`
	Memory string `json:"memory"`
}

// PodMetrics is the converted usage of every container in a pod.
type PodMetrics struct {
	Containers []ContainerMetrics `json:"containers"`
}

// PodUsage queries the metrics.k8s.io API for the pod's current usage.
// The error is classified, but callers treat any failure the same way: the
// metrics API being absent, the pod not yet scraped and an RBAC denial all
// render as "metrics unavailable".
func (a *Accessor) PodUsage(ctx context.Context, name, namespace string) (*PodMetrics, error) {
	c, err := a.connect()
	if err != nil {
		return nil, err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	pm, err := c.metrics.MetricsV1beta1().PodMetricses(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classifyError(err)
	}

	containers := make([]ContainerMetrics, 0, len(pm.Containers))
	for _, container := range pm.Containers {
		cm := ContainerMetrics{Name: container.Name, CPU: "N/A", Memory: "N/A"}

		if cpu, ok := container.Usage[corev1.ResourceCPU]; ok {
			cm.CPU = ConvertCPU(cpu.String())
		}
		if mem, ok := container.Usage[corev1.ResourceMemory]; ok {
			cm.Memory = ConvertMemory(mem.String())
		}

		containers = append(containers, cm)
	}

	return &PodMetrics{Containers: containers}, nil
}
