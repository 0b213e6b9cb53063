package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kognitos/mission-control/internal/auth"
)

// newContextsCmd creates the contexts command and all its subcommands
// This is the cluster-selection side of the tool: which kubeconfig context is
// active decides which environment every other command talks to
func newContextsCmd() *cobra.Command {
	contextsCmd := &cobra.Command{
		Use:   "contexts",
		Short: "List, switch and log in to kube contexts",
		Long: `The contexts command manages which Kubernetes cluster missionctl talks to.
All resource commands run against whatever context is current in your
kubeconfig, so switching here redirects every subsequent command.

A context switch rewrites only the current-context field of the kubeconfig;
clusters, users and the contexts themselves are preserved exactly. The switch
takes effect on the very next command because clients are built per call.

Examples:
  missionctl contexts list                 # Show all contexts, current marked
  missionctl contexts switch kognitos-dev  # Make a context current
  missionctl contexts login                # Re-run SSO login for the current context`,
	}

	contextsCmd.AddCommand(newContextsListCmd())
	contextsCmd.AddCommand(newContextsSwitchCmd())
	contextsCmd.AddCommand(newContextsLoginCmd())

	return contextsCmd
}

// newContextsListCmd creates the 'contexts list' subcommand
func newContextsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List kube contexts and mark the current one",
		Long: `Display every context defined in the kubeconfig, sorted by name, with the
current context marked. An unreadable or malformed kubeconfig yields an empty
listing rather than an error, matching how the resource views degrade.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			names, current := dashboardSvc.ListContexts()

			switch viper.GetString("output") {
			case "json":
				return outputJSON(contextListing(names, current))
			case "yaml":
				return outputYAML(contextListing(names, current))
			}

			if len(names) == 0 {
				fmt.Println("No contexts found. Is your kubeconfig readable?")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "CURRENT\tNAME\tENVIRONMENT")
			fmt.Fprintln(w, "-------\t----\t-----------")
			for _, name := range names {
				marker := ""
				if name == current {
					marker = "*"
				}
				env := auth.EnvFromContext(name, appConfig.EnvContextPatterns)
				if env == "" {
					env = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", marker, name, env)
			}
			return nil
		},
	}
}

// contextListing wraps context names for structured output
func contextListing(names []string, current string) any {
	return struct {
		Contexts []string `json:"contexts" yaml:"contexts"`
		Current  string   `json:"current" yaml:"current"`
		Count    int      `json:"count" yaml:"count"`
	}{
		Contexts: names,
		Current:  current,
		Count:    len(names),
	}
}

// newContextsSwitchCmd creates the 'contexts switch' subcommand
func newContextsSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <context>",
		Short: "Make a kube context the current one",
		Long: `Set the kubeconfig's current-context to the named context. The name is not
validated against the defined contexts, mirroring kubectl's behavior: you can
point at a context that a teammate's tooling will create later.

The rewrite preserves every other kubeconfig field. Failure means the
kubeconfig could not be read or written, typically a permissions problem.`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !dashboardSvc.SwitchContext(name) {
				return fmt.Errorf("failed to switch context: kubeconfig not readable or writable")
			}
			fmt.Printf("Switched to context %q\n", name)
			return nil
		},
	}
}

// newContextsLoginCmd creates the 'contexts login' subcommand
// This drives the external SSO login script for the current context's
// environment, the usual fix when commands start failing with auth errors
func newContextsLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Run the cluster login script for the current context",
		Long: `Re-run the environment's SSO login script for the current kube context.
The script lives at <gitopsPath>/scripts/setup-access.sh and receives the
environment name (dev, stg or prod) as its argument. Local kind clusters need
no login and are rejected with a clear message.

The script opens a browser SSO flow, so the command waits up to two minutes
before giving up. Each failure mode gets its own message: missing gitopsPath
configuration, missing script, script failure (stderr included), timeout.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			_, current := dashboardSvc.ListContexts()
			if current == "" {
				return fmt.Errorf("no current context set in kubeconfig")
			}

			fmt.Printf("Logging in for context %q...\n", current)

			result := auth.Login(cmd.Context(), current, appConfig.EnvContextPatterns, appConfig.GitopsPath)
			if !result.Success {
				return fmt.Errorf("%s", result.Message)
			}
			fmt.Println(result.Message)
			return nil
		},
	}
}
