package cli

import (
	"github.com/spf13/cobra"
	"github.com/touchin/ticodegen/internal/config"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate code from OpenAPI specification",
	}

	config.BindCommonFlags(cmd)
	cmd.AddCommand(NewKotlinCmd())

	return cmd
}
