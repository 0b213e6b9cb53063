package k8s

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"
)

// RedactedPlaceholder replaces every secret data value in rendered
// manifests. Secret values must never leave this package in any form.
const RedactedPlaceholder = "<REDACTED>"

// Manifest fetches a single resource and serializes it as YAML. Secrets have
// every data value replaced with RedactedPlaceholder before serialization;
// everything else is rendered verbatim as the API returned it.
func (a *Accessor) Manifest(ctx context.Context, kind Kind, namespace, name string) (string, error) {
	gvr, ok := kindResources[kind]
	if !ok {
		return "", &APIError{
			Type:    ErrNotFound,
			Message: fmt.Sprintf("unknown resource kind %q", kind),
		}
	}

	c, err := a.connect()
	if err != nil {
		return "", err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	obj, err := c.dynamic.Resource(gvr).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return "", classifyError(err)
	}

	if kind == KindSecret {
		redactSecretData(obj)
	}

	data, err := yaml.Marshal(obj.Object)
	if err != nil {
		return "", &APIError{
			Type:    ErrMalformed,
			Message: fmt.Sprintf("failed to serialize manifest: %v", err),
			Err:     err,
		}
	}
	return string(data), nil
}

// redactSecretData overwrites every value under the data block in place.
// This runs unconditionally whenever the block is non-empty.
func redactSecretData(obj *unstructured.Unstructured) {
	data, found, _ := unstructured.NestedMap(obj.Object, "data")
	if !found || len(data) == 0 {
		return
	}
	for key := range data {
		data[key] = RedactedPlaceholder
	}
	_ = unstructured.SetNestedMap(obj.Object, data, "data")
}
