package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kognitos/mission-control/internal/k8s"
)

// newTriggersCmd creates the triggers command with its subcommands
func newTriggersCmd() *cobra.Command {
	triggersCmd := &cobra.Command{
		Use:   "triggers",
		Short: "View TriggerInstance resources in a workspace namespace",
		Long: `The triggers command lists the TriggerInstance custom resources in a
namespace and shows their manifests. A TriggerInstance wires an external event
source (a schedule, a webhook, an inbox) to a workspace automation.

Examples:
  missionctl triggers list                     # Triggers in the namespace
  missionctl triggers manifest daily-report    # Full manifest as YAML`,
	}

	triggersCmd.AddCommand(newTriggersListCmd())
	triggersCmd.AddCommand(newTriggersManifestCmd())

	return triggersCmd
}

// newTriggersListCmd creates the 'triggers list' subcommand
func newTriggersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List TriggerInstances in the target namespace",

		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := targetNamespace(cmd)
			rows := dashboardSvc.ListResources(cmd.Context(), k8s.KindTriggerInstance, namespace)
			return outputRows(k8s.KindTriggerInstance, namespace, rows)
		},
	}
}

// newTriggersManifestCmd creates the 'triggers manifest' subcommand
func newTriggersManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <name>",
		Short: "Show a TriggerInstance's manifest as YAML",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := dashboardSvc.GetManifest(cmd.Context(), k8s.KindTriggerInstance, targetNamespace(cmd), args[0])
			fmt.Println(manifest)
			return nil
		},
	}
}
