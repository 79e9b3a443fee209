package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mindcheck",
		Short:         "Informational mental-health self-check",
		Long:          "Serves the PHQ-9 questionnaire and symptom matcher, and manages the disorder catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newImportCatalogCommand())
	root.AddCommand(newHashPasswordCommand())
	root.AddCommand(newCheckCommand())
	return root
}
