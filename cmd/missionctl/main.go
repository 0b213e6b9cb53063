package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kognitos/mission-control/internal/config"
	"github.com/kognitos/mission-control/internal/dashboard"
)

// Global variables to hold our core components
// These are initialized once in PersistentPreRunE and reused across commands
var (
	appConfig    *config.Config
	dashboardSvc *dashboard.Service
)

// rootCmd represents the base command when called without any subcommands
// This is the foundation of our CLI - everything branches from here
var rootCmd = &cobra.Command{
	Use:   "missionctl",
	Short: "Mission Control for Kognitos workspace clusters",
	Long: `Mission Control is a read-mostly operational dashboard for the Kubernetes
clusters behind Kognitos workspaces. Paste a workspace URL and it finds the
right cluster context and namespace; from there you can browse Books,
BookConnections, TriggerInstances, Deployments and Secrets, inspect manifests,
tail pod logs and check live resource usage.

With missionctl, you can:
- Resolve an application URL straight to its environment and namespace
- List workspace resources including the Kognitos custom kinds
- View any resource manifest as YAML (Secret values always redacted)
- Correlate a BookConnection with its backing pod and live metrics
- Switch kube contexts and re-login to dev, stg or prod environments

Examples:
  missionctl resolve https://app.us-1.dev.kognitos.com/organizations/acme/workspaces/main/agents
  missionctl books list                           # Books in the resolved namespace
  missionctl connections pod slack-conn           # Backing pod with live usage
  missionctl secrets manifest api-credentials     # Redacted manifest
  missionctl contexts login                       # Re-run cluster SSO login

Configuration:
  missionctl looks for configuration in these locations (in order):
  1. ./mission-control.yaml (current directory)
  2. ~/.mission-control/config.yaml (user home directory)
  3. $XDG_CONFIG_HOME/mission-control/config.yaml (XDG config directory)

  A missing file is fine: defaults cover a standard ~/.kube/config setup.`,

	// PersistentPreRunE wires the dashboard service before any command runs.
	// Unlike a connection pool there is nothing to warm up here: clients are
	// built per call so that a context switch takes effect on the next command.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appConfig = cfg
		dashboardSvc = dashboard.New(cfg)
		return nil
	},
}

func main() {
	// Execute the root command - this starts the entire CLI application
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags that apply to all commands
	rootCmd.PersistentFlags().String("config", "", "config file path (default: auto-detect)")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringP("namespace", "n", "", "namespace to operate in (default: resolved or configured namespace)")

	// Bind flags to viper for configuration management
	// We check these errors because flag binding can fail if flag names don't
	// match or if the viper configuration is in an invalid state
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		panic(fmt.Sprintf("failed to bind config flag: %v", err))
	}
	if err := viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		panic(fmt.Sprintf("failed to bind output flag: %v", err))
	}

	// Add all our subcommands to the root command
	// This builds the complete command tree that users will interact with
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newContextsCmd())
	rootCmd.AddCommand(newBooksCmd())
	rootCmd.AddCommand(newConnectionsCmd())
	rootCmd.AddCommand(newTriggersCmd())
	rootCmd.AddCommand(newDeploymentsCmd())
	rootCmd.AddCommand(newSecretsCmd())
	rootCmd.AddCommand(newPodsCmd())
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	// Allow overrides like MISSIONCTL_CONFIG without extra flags
	viper.SetEnvPrefix("MISSIONCTL")
	viper.AutomaticEnv()
}

// targetNamespace picks the namespace for a command: the explicit flag when
// given, the configured default otherwise.
func targetNamespace(cmd *cobra.Command) string {
	ns := cmd.Flag("namespace").Value.String()
	if ns == "" {
		return dashboardSvc.DefaultNamespace()
	}
	return ns
}
