package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lexiguard/lexiguard"
	"github.com/lexiguard/lexiguard/pkg/recognizer"
)

var (
	configPath   string
	outputFormat string
)

var recognizersCmd = &cobra.Command{
	Use:   "recognizers",
	Short: "Manage recognizers",
	Long:  "Commands for listing and inspecting recognizers",
}

var recognizersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recognizer instances",
	Long: `Display the recognizer instances a configuration resolves to.
Without --config, the packaged default configuration is used.`,
	RunE: runRecognizersList,
}

var recognizersBuiltinCmd = &cobra.Command{
	Use:   "builtin",
	Short: "List built-in recognizer names",
	Long:  "Display the predefined recognizer names this build carries",
	RunE:  runRecognizersBuiltin,
}

func init() {
	recognizersCmd.AddCommand(recognizersListCmd)
	recognizersCmd.AddCommand(recognizersBuiltinCmd)
	recognizersListCmd.Flags().StringVar(&configPath, "config", "", "Path to registry configuration file")
	recognizersListCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format: table, json")
}

func runRecognizersList(cmd *cobra.Command, args []string) error {
	reg, err := lexiguard.LoadRegistry(configPath)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	switch outputFormat {
	case "json":
		return outputInstancesJSON(cmd, reg)
	case "table":
		return outputInstancesTable(cmd, reg)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}

func runRecognizersBuiltin(cmd *cobra.Command, args []string) error {
	for _, name := range recognizer.BuiltinNames() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

type instanceInfo struct {
	Name     string   `json:"name"`
	Entity   string   `json:"entity"`
	Language string   `json:"language"`
	Context  []string `json:"context,omitempty"`
	Patterns int      `json:"patterns"`
}

func collectInstances(reg *lexiguard.Registry) []instanceInfo {
	instances := make([]instanceInfo, 0, reg.Len())
	for _, rec := range reg.Recognizers() {
		info := instanceInfo{
			Name:     rec.Name(),
			Entity:   rec.SupportedEntity(),
			Language: rec.SupportedLanguage(),
			Context:  rec.Context(),
		}
		if pr, ok := rec.(*recognizer.PatternRecognizer); ok {
			info.Patterns = len(pr.Patterns())
		}
		instances = append(instances, info)
	}
	return instances
}

func outputInstancesJSON(cmd *cobra.Command, reg *lexiguard.Registry) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(collectInstances(reg))
}

func outputInstancesTable(cmd *cobra.Command, reg *lexiguard.Registry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Name\tEntity\tLanguage\tPatterns\tContext\n")
	fmt.Fprintf(w, "----\t------\t--------\t--------\t-------\n")

	for _, info := range collectInstances(reg) {
		context := ""
		if len(info.Context) > 0 {
			context = strings.Join(info.Context, ",")
			if len(context) > 40 {
				context = context[:37] + "..."
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			info.Name, info.Entity, info.Language, info.Patterns, context)
	}

	return nil
}
