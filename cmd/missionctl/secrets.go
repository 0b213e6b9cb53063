package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kognitos/mission-control/internal/k8s"
)

// newSecretsCmd creates the secrets command with its subcommands
func newSecretsCmd() *cobra.Command {
	secretsCmd := &cobra.Command{
		Use:   "secrets",
		Short: "View Secrets in a workspace namespace (values always redacted)",
		Long: `The secrets command lists the Secrets in a namespace and shows their
manifests. Secret values are never displayed anywhere: listings show only the
key names, and manifests replace every data value with <REDACTED> before
rendering. There is no flag to reveal them; use kubectl directly when you
genuinely need a value.

Examples:
  missionctl secrets list                      # Secrets with their key names
  missionctl secrets manifest api-credentials  # Redacted manifest as YAML`,
	}

	secretsCmd.AddCommand(newSecretsListCmd())
	secretsCmd.AddCommand(newSecretsManifestCmd())

	return secretsCmd
}

// newSecretsListCmd creates the 'secrets list' subcommand
func newSecretsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Secrets in the target namespace",

		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := targetNamespace(cmd)
			rows := dashboardSvc.ListResources(cmd.Context(), k8s.KindSecret, namespace)
			return outputRows(k8s.KindSecret, namespace, rows)
		},
	}
}

// newSecretsManifestCmd creates the 'secrets manifest' subcommand
func newSecretsManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <name>",
		Short: "Show a Secret's manifest as YAML with values redacted",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := dashboardSvc.GetManifest(cmd.Context(), k8s.KindSecret, targetNamespace(cmd), args[0])
			fmt.Println(manifest)
			return nil
		},
	}
}
