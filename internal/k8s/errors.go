package k8s

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"
)

// ErrType classifies cluster API failures so callers can react without
// parsing error strings.
type ErrType int

const (
	ErrUnknown      ErrType = iota
	ErrNotFound             // resource or CRD kind absent
	ErrUnauthorized         // 401, expired token
	ErrForbidden            // 403, RBAC denial
	ErrUnreachable          // network failure, DNS, timeout
	ErrMalformed            // kubeconfig unreadable or invalid
)

// APIError wraps a cluster API error with its classification.
type APIError struct {
	Type    ErrType
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyError converts an arbitrary cluster call failure into an APIError.
// nil passes through so call sites can wrap unconditionally.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}

	switch {
	case k8serrors.IsNotFound(err):
		return &APIError{Type: ErrNotFound, Message: err.Error(), Err: err}
	case k8serrors.IsUnauthorized(err):
		return &APIError{Type: ErrUnauthorized, Message: err.Error(), Err: err}
	case k8serrors.IsForbidden(err):
		return &APIError{Type: ErrForbidden, Message: err.Error(), Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &APIError{
			Type:    ErrUnreachable,
			Message: fmt.Sprintf("cluster unreachable: %v", err),
			Err:     err,
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, token := range []string{"connection refused", "no such host", "i/o timeout", "unable to connect"} {
		if strings.Contains(errStr, token) {
			return &APIError{
				Type:    ErrUnreachable,
				Message: fmt.Sprintf("cluster unreachable: %v", err),
				Err:     err,
			}
		}
	}

	return &APIError{Type: ErrUnknown, Message: err.Error(), Err: err}
}

// IsAuthError reports whether err is a classified authentication or
// authorization failure. Presentation layers use this to offer a re-login
// after an otherwise absorbed error.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrUnauthorized || apiErr.Type == ErrForbidden
	}
	return false
}
