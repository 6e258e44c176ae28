package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "ticodegen",
		Short:   "ticodegen - Kotlin client models from OpenAPI documents",
		Version: "1.0.0",

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(GenerateCommand())

	return root
}
