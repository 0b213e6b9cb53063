package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kognitos/mission-control/internal/k8s"
)

// newDeploymentsCmd creates the deployments command with its subcommands
// Deployments are the plain Kubernetes side of a workspace: the services that
// host the custom resources above
func newDeploymentsCmd() *cobra.Command {
	deploymentsCmd := &cobra.Command{
		Use:   "deployments",
		Short: "View Deployments in a workspace namespace",
		Long: `The deployments command lists the Kubernetes Deployments in a namespace and
shows their manifests. The READY column is "<ready>/<desired>" replicas; a
mismatch there is usually the first sign of a rollout problem.

Examples:
  missionctl deployments list                  # Deployments in the namespace
  missionctl deployments manifest brain        # Full manifest as YAML`,
	}

	deploymentsCmd.AddCommand(newDeploymentsListCmd())
	deploymentsCmd.AddCommand(newDeploymentsManifestCmd())

	return deploymentsCmd
}

// newDeploymentsListCmd creates the 'deployments list' subcommand
func newDeploymentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Deployments in the target namespace",
		Long: `Display the Deployments in the target namespace with ready/desired replica
counts and the image of the first container. Both counts default to 0 when
the cluster has not reported status yet.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := targetNamespace(cmd)
			rows := dashboardSvc.ListResources(cmd.Context(), k8s.KindDeployment, namespace)
			return outputRows(k8s.KindDeployment, namespace, rows)
		},
	}
}

// newDeploymentsManifestCmd creates the 'deployments manifest' subcommand
func newDeploymentsManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <name>",
		Short: "Show a Deployment's manifest as YAML",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := dashboardSvc.GetManifest(cmd.Context(), k8s.KindDeployment, targetNamespace(cmd), args[0])
			fmt.Println(manifest)
			return nil
		},
	}
}
