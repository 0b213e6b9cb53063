package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kognitos/mission-control/internal/k8s"
)

// newPodsCmd creates the pods command with its subcommands
// Pods are not browsed as a listing here; they are reached by name, usually
// taken from 'connections pod', for logs, manifests and usage
func newPodsCmd() *cobra.Command {
	podsCmd := &cobra.Command{
		Use:   "pods",
		Short: "Inspect individual pods: logs, manifest, usage",
		Long: `The pods command inspects a single pod by name. Use 'connections pod' to
discover which pod backs a BookConnection, then come here for its recent logs,
full manifest or live resource usage.

Examples:
  missionctl pods logs slack-conn-7d9f          # Last 500 log lines
  missionctl pods logs slack-conn-7d9f --tail 50
  missionctl pods manifest slack-conn-7d9f      # Full manifest as YAML
  missionctl pods metrics slack-conn-7d9f       # Live CPU/memory per container`,
	}

	podsCmd.AddCommand(newPodsLogsCmd())
	podsCmd.AddCommand(newPodsManifestCmd())
	podsCmd.AddCommand(newPodsMetricsCmd())

	return podsCmd
}

// newPodsLogsCmd creates the 'pods logs' subcommand
func newPodsLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs <name>",
		Short: "Show the tail of a pod's logs",
		Long: `Fetch the most recent log lines from the named pod. The tail defaults to 500
lines. A pod that has produced no output prints "No logs available"; fetch
failures are reported inline the same way the manifest view reports them.`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			tail, _ := cmd.Flags().GetInt64("tail")
			logs := dashboardSvc.PodLogs(cmd.Context(), args[0], targetNamespace(cmd), tail)
			fmt.Println(logs)
			return nil
		},
	}

	cmd.Flags().Int64("tail", k8s.DefaultLogTailLines, "number of recent log lines to fetch")
	return cmd
}

// newPodsManifestCmd creates the 'pods manifest' subcommand
func newPodsManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <name>",
		Short: "Show a pod's manifest as YAML",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := dashboardSvc.GetManifest(cmd.Context(), k8s.KindPod, targetNamespace(cmd), args[0])
			fmt.Println(manifest)
			return nil
		},
	}
}

// newPodsMetricsCmd creates the 'pods metrics' subcommand
func newPodsMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics <name>",
		Short: "Show live CPU and memory usage for a pod",
		Long: `Display per-container CPU and memory usage from the metrics API, converted
to millicores and megabytes. Requires a metrics-server in the cluster; without
one the command reports that no usage data is available.`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := dashboardSvc.PodMetrics(cmd.Context(), args[0], targetNamespace(cmd))
			if metrics == nil || len(metrics.Containers) == 0 {
				fmt.Println("No usage data available (is metrics-server running?)")
				return nil
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(metrics)
			case "yaml":
				return outputYAML(metrics)
			}

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
