// Package urlparse turns pasted Kognitos application URLs into the
// environment and workspace namespace they refer to.
package urlparse

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Environment identifies which class of cluster a URL points at.
type Environment string

const (
	EnvLocal Environment = "local"
	EnvDev   Environment = "dev"
	EnvStg   Environment = "stg"
	EnvProd  Environment = "prod"
)

// Descriptor is the structured form of a Kognitos application URL.
// Namespace is always derived as org-<OrgID>-ws-<WorkspaceID>.
type Descriptor struct {
	Env         Environment `json:"env"`
	OrgID       string      `json:"orgId"`
	WorkspaceID string      `json:"wsId"`
	Namespace   string      `json:"namespace"`
}

var (
	orgWorkspacePattern = regexp.MustCompile(`/organizations/([^/]+)/workspaces/([^/]+)`)
	invalidNameChars    = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns          = regexp.MustCompile(`-+`)
)

// SanitizeName makes a string kubernetes-name compliant: lowercase,
// alphanumeric and single hyphens only, no leading or trailing hyphen.
func SanitizeName(name string) string {
	name = strings.ToLower(name)
	name = invalidNameChars.ReplaceAllString(name, "-")
	name = hyphenRuns.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}

// Parse extracts environment, org id, workspace id and namespace from a
// Kognitos URL. Supported forms:
//
//	app.us-1.dev.kognitos.com/organizations/<org>/workspaces/<ws>/...
//	app.us-1.stg.kognitos.com/organizations/<org>/workspaces/<ws>/...
//	app.us-1.kognitos.com/organizations/<org>/workspaces/<ws>/...
//	localhost:3000/organizations/<org>/workspaces/<ws>/...
//
// Anything that does not match returns nil; malformed input is never an
// error, the caller just keeps its previous namespace.
func Parse(raw string) *Descriptor {
	if raw == "" {
		return nil
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil
	}

	env := detectEnvironment(parsed.Host)
	if env == "" {
		return nil
	}

	match := orgWorkspacePattern.FindStringSubmatch(parsed.Path)
	if match == nil {
		return nil
	}

	orgID := SanitizeName(match[1])
	wsID := SanitizeName(match[2])

	return &Descriptor{
		Env:         env,
		OrgID:       orgID,
		WorkspaceID: wsID,
		Namespace:   fmt.Sprintf("org-%s-ws-%s", orgID, wsID),
	}
}

// detectEnvironment maps a hostname to an environment. The checks are
// ordered: a host like app.us-1.dev.kognitos.com must resolve to dev, not
// prod, so the bare kognitos.com check comes last.
func detectEnvironment(host string) Environment {
	switch {
	case strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1"):
		return EnvLocal
	case strings.Contains(host, ".dev."):
		return EnvDev
	case strings.Contains(host, ".stg."):
		return EnvStg
	case strings.Contains(host, "kognitos.com"):
		return EnvProd
	}
	return ""
}
