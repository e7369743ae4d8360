package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:               "open-aigov",
	Short:             "Open-AIGov tracks the AI integrations, models and use cases of each tenant.",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: prepareCommand,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(
		structuredLog(serveCmd),
		structuredLog(migrateCmd),
		structuredLog(seedIntegrationsCmd),
		structuredLog(validateCatalogCmd),
		usersCmd,
	)
}
