package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kognitos/mission-control/internal/k8s"
)

// newBooksCmd creates the books command with its subcommands
// Books are the Kognitos skill packages deployed into a workspace; this view
// answers "which books run here, at which versions?"
func newBooksCmd() *cobra.Command {
	booksCmd := &cobra.Command{
		Use:   "books",
		Short: "View Book resources in a workspace namespace",
		Long: `The books command lists the Book custom resources in a namespace and shows
their manifests. A Book is a deployed skill package; its display name, version
and BDK version come from the resource spec.

Examples:
  missionctl books list                        # Books in the default namespace
  missionctl books list -n org-acme-ws-main    # Books in a specific workspace
  missionctl books manifest hello-world        # Full manifest as YAML`,
	}

	booksCmd.AddCommand(newBooksListCmd())
	booksCmd.AddCommand(newBooksManifestCmd())

	return booksCmd
}

// newBooksListCmd creates the 'books list' subcommand
func newBooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Books in the target namespace",
		Long: `Display the Book resources in the target namespace with their declared name,
version and BDK runtime version. An empty listing means either an empty
namespace or an unreachable cluster; if you suspect the latter, try
'missionctl contexts login' first.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := targetNamespace(cmd)
			rows := dashboardSvc.ListResources(cmd.Context(), k8s.KindBook, namespace)
			return outputRows(k8s.KindBook, namespace, rows)
		},
	}
}

// newBooksManifestCmd creates the 'books manifest' subcommand
func newBooksManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <name>",
		Short: "Show a Book's manifest as YAML",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := dashboardSvc.GetManifest(cmd.Context(), k8s.KindBook, targetNamespace(cmd), args[0])
			fmt.Println(manifest)
			return nil
		},
	}
}
