package k8s

import (
	"context"
	"errors"
	"fmt"
	"testing"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestClassifyError(t *testing.T) {
	gr := schema.GroupResource{Group: "kognitos.com", Resource: "books"}

	tests := []struct {
		name string
		err  error
		want ErrType
	}{
		{"not found", k8serrors.NewNotFound(gr, "hello-world"), ErrNotFound},
		{"unauthorized", k8serrors.NewUnauthorized("token expired"), ErrUnauthorized},
		{"forbidden", k8serrors.NewForbidden(gr, "hello-world", errors.New("rbac")), ErrForbidden},
		{"deadline", fmt.Errorf("list failed: %w", context.DeadlineExceeded), ErrUnreachable},
		{"connection refused text", errors.New("dial tcp 10.0.0.1:6443: connection refused"), ErrUnreachable},
		{"no such host text", errors.New("dial tcp: lookup api.cluster: no such host"), ErrUnreachable},
		{"opaque", errors.New("something else entirely"), ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyError(tt.err)
			apiErr, ok := classified.(*APIError)
			if !ok {
				t.Fatalf("Expected *APIError, got %T", classified)
			}
			if apiErr.Type != tt.want {
				t.Errorf("Expected type %d, got %d (%s)", tt.want, apiErr.Type, apiErr.Message)
			}
			if !errors.Is(classified, tt.err) && apiErr.Err == nil {
				t.Error("Expected the cause to be preserved")
			}
		})
	}
}

func TestClassifyErrorNil(t *testing.T) {
	if classifyError(nil) != nil {
		t.Error("Expected nil to pass through")
	}
}

func TestClassifyErrorIdempotent(t *testing.T) {
	original := &APIError{Type: ErrForbidden, Message: "rbac denial"}
	wrapped := fmt.Errorf("while listing: %w", original)

	classified := classifyError(wrapped)
	var apiErr *APIError
	if !errors.As(classified, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", classified)
	}
	if apiErr.Type != ErrForbidden {
		t.Errorf("Reclassification lost the original type, got %d", apiErr.Type)
	}
}

func TestIsAuthError(t *testing.T) {
	if !IsAuthError(&APIError{Type: ErrUnauthorized}) {
		t.Error("Expected unauthorized to count as auth error")
	}
	if !IsAuthError(fmt.Errorf("wrapped: %w", &APIError{Type: ErrForbidden})) {
		t.Error("Expected wrapped forbidden to count as auth error")
	}
	if IsAuthError(&APIError{Type: ErrUnreachable}) {
		t.Error("Expected unreachable to not count as auth error")
	}
	if IsAuthError(errors.New("plain")) {
		t.Error("Expected unclassified error to not count as auth error")
	}
}
