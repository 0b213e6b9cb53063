package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/kognitos/mission-control/internal/k8s"
)

// outputRows renders a resource listing in the format selected by --output.
// Table is the default; json and yaml wrap the rows with a count for
// programmatic use.
func outputRows(kind k8s.Kind, namespace string, rows []k8s.Row) error {
	switch viper.GetString("output") {
	case "json":
		return outputJSON(rowListing(namespace, rows))
	case "yaml":
		return outputYAML(rowListing(namespace, rows))
	default:
		return outputRowsTable(kind, namespace, rows)
	}
}

// rowListing wraps rows for structured output
func rowListing(namespace string, rows []k8s.Row) any {
	return struct {
		Namespace string    `json:"namespace" yaml:"namespace"`
		Rows      []k8s.Row `json:"rows" yaml:"rows"`
		Count     int       `json:"count" yaml:"count"`
	}{
		Namespace: namespace,
		Rows:      rows,
		Count:     len(rows),
	}
}

// outputRowsTable displays the listing as a tabwriter table with per-kind
// columns. An empty listing means either a truly empty namespace or an
// unreachable cluster; the two render the same on purpose.
func outputRowsTable(kind k8s.Kind, namespace string, rows []k8s.Row) error {
	if len(rows) == 0 {
		fmt.Printf("No resources found in namespace %s.\n", namespace)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	defer w.Flush()

	switch kind {
	case k8s.KindBook:
		fmt.Fprintln(w, "NAME\tBOOK\tVERSION\tBDK VERSION\tCREATED")
		fmt.Fprintln(w, "----\t----\t-------\t-----------\t-------")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				row.Name, dash(row.LabelName), dash(row.LabelVersion), dash(row.BDKVersion), dash(row.Created))
		}
	case k8s.KindDeployment:
		fmt.Fprintln(w, "NAME\tREADY\tIMAGE\tCREATED")
		fmt.Fprintln(w, "----\t-----\t-----\t-------")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				row.Name, row.Replicas, dash(row.Image), dash(row.Created))
		}
	case k8s.KindSecret:
		fmt.Fprintln(w, "NAME\tTYPE\tKEYS\tCREATED")
		fmt.Fprintln(w, "----\t----\t----\t-------")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				row.Name, row.Type, dash(row.Keys), dash(row.Created))
		}
	default:
		// BookConnection and TriggerInstance share the labelled name/version
		// shape.
		fmt.Fprintln(w, "NAME\tBOOK\tVERSION\tCREATED")
		fmt.Fprintln(w, "----\t----\t-------\t-------")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				row.Name, dash(row.LabelName), dash(row.LabelVersion), dash(row.Created))
		}
	}

	fmt.Fprintf(w, "\nFound %d resources in namespace %s\n", len(rows), namespace)
	return nil
}

// outputJSON marshals any value with indentation for readability
func outputJSON(v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

// outputYAML marshals any value as YAML
func outputYAML(v any) error {
	yamlData, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	fmt.Print(string(yamlData))
	return nil
}

// dash substitutes a placeholder for empty table cells
func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
