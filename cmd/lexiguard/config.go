package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexiguard/lexiguard"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Work with registry configuration",
	Long:  "Commands for validating registry configuration files",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a registry configuration file",
	Long: `Resolve and assemble the given registry configuration, reporting the
recognizer instances it produces or the first construction error.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigValidate,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	reg, err := lexiguard.LoadRegistry(args[0])
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration OK\n")
	fmt.Fprintf(out, "Languages: %v\n", reg.SupportedLanguages())
	fmt.Fprintf(out, "Recognizer instances: %d\n", reg.Len())
	fmt.Fprintf(out, "Global regex flags: %s\n", reg.GlobalRegexFlags())
	return nil
}
