package k8s

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
)

// Row is the uniform projection of one listed resource. Name, Namespace and
// Created are always set; the remaining fields depend on the kind.
type Row struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Created   string `json:"created"`

	// Book and TriggerInstance carry a display name and version; Books read
	// them from spec, the other kinds from metadata labels.
	LabelName    string `json:"labelName,omitempty"`
	LabelVersion string `json:"labelVersion,omitempty"`

	// Book only.
	BDKVersion string `json:"bdkVersion,omitempty"`

	// Deployment only.
	Replicas string `json:"replicas,omitempty"`
	Image    string `json:"image,omitempty"`

	// Secret only. Keys is the sorted, comma-joined key list; values are
	// never exposed here or anywhere else.
	Type string `json:"type,omitempty"`
	Keys string `json:"keys,omitempty"`
}

// List returns the rows for every resource of the given kind in the
// namespace. The error is classified; callers that render directly should go
// through dashboard.Service, which absorbs it into an empty listing.
func (a *Accessor) List(ctx context.Context, kind Kind, namespace string) ([]Row, error) {
	c, err := a.connect()
	if err != nil {
		return nil, err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	switch kind {
	case KindDeployment:
		return listDeployments(ctx, c.clientset, namespace)
	case KindSecret:
		return listSecrets(ctx, c.clientset, namespace)
	default:
		gvr, ok := kindResources[kind]
		if !ok {
			return nil, &APIError{
				Type:    ErrNotFound,
				Message: fmt.Sprintf("unknown resource kind %q", kind),
			}
		}
		return listDynamic(ctx, c.dynamic, gvr, kind, namespace)
	}
}

// listDynamic lists a custom kind through the dynamic client and extracts
// rows per kind. Books read name/version from spec, the rest from labels;
// that split mirrors how the resources are actually labelled in the
// clusters, so it is deliberate per-kind behavior, not an oversight to unify.
func listDynamic(ctx context.Context, client dynamic.Interface, gvr schema.GroupVersionResource, kind Kind, namespace string) ([]Row, error) {
	list, err := client.Resource(gvr).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyError(err)
	}

	rows := make([]Row, 0, len(list.Items))
	for _, item := range list.Items {
		switch kind {
		case KindBook:
			rows = append(rows, bookRow(item))
		case KindBookConnection:
			rows = append(rows, labelRow(item, "book_name", "book_version"))
		default:
			rows = append(rows, labelRow(item, "name", "version"))
		}
	}
	return rows, nil
}

func bookRow(obj unstructured.Unstructured) Row {
	specName, _, _ := unstructured.NestedString(obj.Object, "spec", "name")
	specVersion, _, _ := unstructured.NestedString(obj.Object, "spec", "version")
	bdkVersion, _, _ := unstructured.NestedString(obj.Object, "spec", "bdkVersion")

	return Row{
		Name:         obj.GetName(),
		Namespace:    obj.GetNamespace(),
		Created:      formatCreated(obj.GetCreationTimestamp().Time),
		LabelName:    specName,
		LabelVersion: specVersion,
		BDKVersion:   bdkVersion,
	}
}

func labelRow(obj unstructured.Unstructured, nameLabel, versionLabel string) Row {
	labels := obj.GetLabels()
	return Row{
		Name:         obj.GetName(),
		Namespace:    obj.GetNamespace(),
		Created:      formatCreated(obj.GetCreationTimestamp().Time),
		LabelName:    labels[nameLabel],
		LabelVersion: labels[versionLabel],
	}
}

func listDeployments(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Row, error) {
	deployments, err := clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyError(err)
	}

	rows := make([]Row, 0, len(deployments.Items))
	for _, d := range deployments.Items {
		var desired int32
		if d.Spec.Replicas != nil {
			desired = *d.Spec.Replicas
		}

		// ReadyReplicas is absent from status until the first pod reports
		// ready; the zero value is exactly the 0 we want to display.
		image := ""
		if len(d.Spec.Template.Spec.Containers) > 0 {
			image = d.Spec.Template.Spec.Containers[0].Image
		}

		rows = append(rows, Row{
			Name:      d.Name,
			Namespace: d.Namespace,
			Created:   formatCreated(d.CreationTimestamp.Time),
			Replicas:  fmt.Sprintf("%d/%d", d.Status.ReadyReplicas, desired),
			Image:     image,
		})
	}
	return rows, nil
}

func listSecrets(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Row, error) {
	secrets, err := clientset.CoreV1().Secrets(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyError(err)
	}

	rows := make([]Row, 0, len(secrets.Items))
	for _, s := range secrets.Items {
		keys := make([]string, 0, len(s.Data))
		for key := range s.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		rows = append(rows, Row{
			Name:      s.Name,
			Namespace: s.Namespace,
			Created:   formatCreated(s.CreationTimestamp.Time),
			Type:      string(s.Type),
			Keys:      strings.Join(keys, ", "),
		})
	}
	return rows, nil
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
