package k8s

import (
	"context"
	"strings"
	"testing"
)

func TestManifestRendersResource(t *testing.T) {
	book := customResource("kognitos.com/v1alpha1", "Book", "slack-book", nil, map[string]interface{}{
		"name":    "Slack",
		"version": "1.2.0",
	})

	a := newFakeAccessor(newFakeClients(nil, book))

	manifest, err := a.Manifest(context.Background(), KindBook, testNamespace, "slack-book")
	if err != nil {
		t.Fatalf("Manifest returned error: %v", err)
	}

	for _, want := range []string{"kind: Book", "name: slack-book", "version: 1.2.0"} {
		if !strings.Contains(manifest, want) {
			t.Errorf("Manifest missing %q:\n%s", want, manifest)
		}
	}
}

func TestManifestNotFound(t *testing.T) {
	a := newFakeAccessor(newFakeClients(nil))

	_, err := a.Manifest(context.Background(), KindBook, testNamespace, "no-such-book")
	if err == nil {
		t.Fatal("Expected error for missing resource")
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Type != ErrNotFound {
		t.Errorf("Expected classified ErrNotFound, got %v", err)
	}
}

func TestManifestUnknownKind(t *testing.T) {
	a := newFakeAccessor(newFakeClients(nil))

	_, err := a.Manifest(context.Background(), Kind("Gadget"), testNamespace, "x")
	if err == nil {
		t.Fatal("Expected error for unknown kind")
	}
}

func TestSecretManifestRedactsValues(t *testing.T) {
	secret := customResource("v1", "Secret", "api-credentials", nil, nil)
	secret.Object["type"] = "Opaque"
	secret.Object["data"] = map[string]interface{}{
		"token":   "c3VwZXItc2VjcmV0",
		"api-key": "ZXZlbi1tb3JlLXNlY3JldA==",
	}

	a := newFakeAccessor(newFakeClients(nil, secret))

	manifest, err := a.Manifest(context.Background(), KindSecret, testNamespace, "api-credentials")
	if err != nil {
		t.Fatalf("Manifest returned error: %v", err)
	}

	if strings.Contains(manifest, "c3VwZXItc2VjcmV0") || strings.Contains(manifest, "ZXZlbi1tb3JlLXNlY3JldA==") {
		t.Fatalf("Secret values leaked into manifest:\n%s", manifest)
	}

	// Every key survives, every value is the placeholder.
	for _, key := range []string{"token", "api-key"} {
		if !strings.Contains(manifest, key) {
			t.Errorf("Manifest lost data key %q:\n%s", key, manifest)
		}
	}
	if strings.Count(manifest, RedactedPlaceholder) != 2 {
		t.Errorf("Expected 2 redaction placeholders:\n%s", manifest)
	}
}

func TestSecretManifestWithoutData(t *testing.T) {
	secret := customResource("v1", "Secret", "empty-secret", nil, nil)
	secret.Object["type"] = "Opaque"

	a := newFakeAccessor(newFakeClients(nil, secret))

	manifest, err := a.Manifest(context.Background(), KindSecret, testNamespace, "empty-secret")
	if err != nil {
		t.Fatalf("Manifest returned error: %v", err)
	}
	if strings.Contains(manifest, RedactedPlaceholder) {
		t.Errorf("No data block, nothing to redact:\n%s", manifest)
	}
}
