// Package auth drives the external cluster login script and recognizes
// auth-shaped failures in opaque error text.
package auth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// LoginTimeout bounds the external login script. The script opens a browser
// SSO flow, so it needs room, but a hung run must not pin the request
// forever.
const LoginTimeout = 120 * time.Second

// loginEnvs are the environment classes the login script accepts. Local
// kind clusters need no login.
var loginEnvs = []string{"dev", "stg", "prod"}

// Result is the outcome of a login attempt. It is returned to the caller
// rather than tracked in process-wide state, so concurrent requests each see
// their own outcome.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EnvFromContext reports which login-capable environment a kube context
// belongs to, by the same substring patterns the environment router uses.
// Returns "" for local and unrecognized contexts.
func EnvFromContext(kubeContext string, patterns map[string]string) string {
	for _, env := range loginEnvs {
		pattern := patterns[env]
		if pattern != "" && strings.Contains(kubeContext, pattern) {
			return env
		}
	}
	return ""
}

// Login runs <gitopsPath>/scripts/setup-access.sh for the environment the
// given kube context belongs to. Every failure mode gets its own message;
// a timeout is reported distinctly from a script failure.
func Login(ctx context.Context, kubeContext string, patterns map[string]string, gitopsPath string) Result {
	env := EnvFromContext(kubeContext, patterns)
	if env == "" {
		return Result{Message: "Login only supported for dev, stg, prod contexts"}
	}

	if gitopsPath == "" {
		return Result{Message: "gitopsPath not configured"}
	}

	scriptPath := filepath.Join(gitopsPath, "scripts", "setup-access.sh")
	if _, err := os.Stat(scriptPath); err != nil {
		return Result{Message: fmt.Sprintf("Script not found: %s", scriptPath)}
	}

	ctx, cancel := context.WithTimeout(ctx, LoginTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, scriptPath, env)
	cmd.Dir = gitopsPath
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{Message: "Login timed out"}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Message: fmt.Sprintf("Login failed: %s", stderr.String())}
		}
		return Result{Message: fmt.Sprintf("Login error: %v", err)}
	}

	return Result{Success: true, Message: fmt.Sprintf("Successfully logged in to %s", env)}
}
