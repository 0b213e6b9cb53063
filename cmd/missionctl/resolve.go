package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kognitos/mission-control/internal/urlparse"
)

// newResolveCmd creates the resolve command
// This is the front door of the tool: paste an application URL and land in
// the right environment and namespace without reading the URL yourself
func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>",
		Short: "Resolve a workspace URL to its environment and namespace",
		Long: `Parse a Kognitos application URL, switch the kubeconfig to the matching
environment's context, and print the namespace to browse.

The environment comes from the host (localhost is local, .dev. hosts are dev,
.stg. hosts are stg, other kognitos.com hosts are prod) and the namespace from
the organization and workspace path segments, sanitized into a DNS-safe
org-<org>-ws-<ws> form.

A URL that does not contain the organizations/workspaces path falls back to
the configured default namespace and leaves the current context untouched, so
pasting the wrong link never moves you to another cluster.

Examples:
  missionctl resolve https://app.us-1.dev.kognitos.com/organizations/acme/workspaces/main/agents
  missionctl resolve localhost:3000/organizations/acme/workspaces/main
  missionctl resolve https://app.kognitos.com/settings   # no match, default namespace`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]
			descriptor := urlparse.Parse(rawURL)
			namespace := dashboardSvc.ResolveAndSwitch(rawURL)
			_, current := dashboardSvc.ListContexts()

			switch viper.GetString("output") {
			case "json":
				return outputJSON(resolveView(descriptor, namespace, current))
			case "yaml":
				return outputYAML(resolveView(descriptor, namespace, current))
			}

			if descriptor == nil {
				fmt.Printf("URL did not match a workspace; using default namespace %s\n", namespace)
				fmt.Printf("Context unchanged: %s\n", dash(current))
				return nil
			}

			fmt.Printf("Environment: %s\n", descriptor.Env)
			fmt.Printf("Namespace:   %s\n", namespace)
			fmt.Printf("Context:     %s\n", dash(current))
			return nil
		},
	}
}

// resolveView wraps a resolution outcome for structured output
func resolveView(descriptor *urlparse.Descriptor, namespace, context string) any {
	return struct {
		Descriptor *urlparse.Descriptor `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
		Namespace  string               `json:"namespace" yaml:"namespace"`
		Context    string               `json:"context" yaml:"context"`
	}{
		Descriptor: descriptor,
		Namespace:  namespace,
		Context:    context,
	}
}
