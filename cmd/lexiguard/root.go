package main

import (
	"github.com/spf13/cobra"

	"github.com/lexiguard/lexiguard/pkg/logging"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "lexiguard",
	Short: "Lexiguard - recognizer registry for PII detection",
	Long: `Lexiguard resolves declarative recognizer configuration into a runnable
registry of PII detectors. Recognizers are either predefined (resolved by
name against the built-in library) or custom (built from inline regex
patterns declared in the configuration).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.AddCommand(recognizersCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
