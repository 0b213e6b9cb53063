package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kognitos/mission-control/internal/k8s"
)

// newConnectionsCmd creates the connections command with its subcommands
// BookConnections bind a Book to a workspace; each one is served by a backing
// pod, which makes this the noun where correlation and live metrics live
func newConnectionsCmd() *cobra.Command {
	connectionsCmd := &cobra.Command{
		Use:   "connections",
		Short: "View BookConnection resources and their backing pods",
		Long: `The connections command lists the BookConnection custom resources in a
namespace, shows their manifests, and correlates each connection with the pod
that serves it.

The pod view is the troubleshooting entry point: it finds the backing pod by
the connection's label, reports its phase, and adds live CPU and memory usage
per container from the metrics API. Missing metrics (no metrics-server, pod
just started) degrade to an empty usage section rather than an error.

Examples:
  missionctl connections list                  # Connections in the namespace
  missionctl connections manifest slack-conn   # Full manifest as YAML
  missionctl connections pod slack-conn        # Backing pod with live usage`,
	}

	connectionsCmd.AddCommand(newConnectionsListCmd())
	connectionsCmd.AddCommand(newConnectionsManifestCmd())
	connectionsCmd.AddCommand(newConnectionsPodCmd())

	return connectionsCmd
}

// newConnectionsListCmd creates the 'connections list' subcommand
func newConnectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List BookConnections in the target namespace",
		Long: `Display the BookConnection resources in the target namespace. The book name
and version shown come from the resource labels, which is how these resources
are annotated in the clusters.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := targetNamespace(cmd)
			rows := dashboardSvc.ListResources(cmd.Context(), k8s.KindBookConnection, namespace)
			return outputRows(k8s.KindBookConnection, namespace, rows)
		},
	}
}

// newConnectionsManifestCmd creates the 'connections manifest' subcommand
func newConnectionsManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <name>",
		Short: "Show a BookConnection's manifest as YAML",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := dashboardSvc.GetManifest(cmd.Context(), k8s.KindBookConnection, targetNamespace(cmd), args[0])
			fmt.Println(manifest)
			return nil
		},
	}
}

// newConnectionsPodCmd creates the 'connections pod' subcommand
// This is the expanded row of the dashboard: connection -> pod -> usage
func newConnectionsPodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pod <name>",
		Short: "Show the backing pod of a BookConnection with live usage",
		Long: `Find the pod serving the named BookConnection and report its phase together
with per-container CPU and memory usage. The pod is located by label selector;
when several pods match (mid-rollout) the first one returned is shown.

Usage figures need a metrics-server in the cluster. Without one the pod is
still shown, just without the usage section.`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := targetNamespace(cmd)
			pod := dashboardSvc.FindPod(cmd.Context(), args[0], namespace)
			if pod == nil {
				fmt.Printf("No backing pod found for connection %q in namespace %s\n", args[0], namespace)
				return nil
			}

			metrics := dashboardSvc.PodMetrics(cmd.Context(), pod.Name, namespace)

			switch viper.GetString("output") {
			case "json":
				return outputJSON(podView(pod, metrics))
			case "yaml":
				return outputYAML(podView(pod, metrics))
			}

			fmt.Printf("Pod:   %s\n", pod.Name)
			fmt.Printf("Phase: %s\n", pod.Phase)

			if metrics == nil || len(metrics.Containers) == 0 {
				fmt.Println("\nNo usage data available (is metrics-server running?)")
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "CONTAINER\tCPU\tMEMORY")
			fmt.Fprintln(w, "---------\t---\t------")
			for _, c := range metrics.Containers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.CPU, c.Memory)
			}
			return nil
		},
	}
}

// podView wraps a pod and its usage for structured output
func podView(pod *k8s.PodSummary, metrics *k8s.PodMetrics) any {
	return struct {
		Pod     *k8s.PodSummary `json:"pod" yaml:"pod"`
		Metrics *k8s.PodMetrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	}{
		Pod:     pod,
		Metrics: metrics,
	}
}
