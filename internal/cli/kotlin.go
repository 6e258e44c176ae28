package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/touchin/ticodegen/internal/config"
	"github.com/touchin/ticodegen/internal/generator"
	"github.com/touchin/ticodegen/internal/loader"
	"go.uber.org/zap"
)

func NewKotlinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kotlin",
		Short: "Generate a Kotlin client project from OpenAPI spec",
		RunE:  runKotlinGenerate,
	}

	config.BindKotlinFlags(cmd)

	return cmd
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runKotlinGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	defer func() { _ = logger.Sync() }()

	warn := color.New(color.FgYellow).SprintFunc()
	ok := color.New(color.FgGreen).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("%s %s\n", warn("Warning:"), w)
	}

	if cfg.ValidateSpec {
		if err := result.Validate(); err != nil {
			return err
		}
		cmd.PrintErrf("%s document is valid\n", ok("Validated:"))
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return fmt.Errorf("transforming spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, bold(spec.Info.Title), spec.Info.Version)
	cmd.PrintErrf("  Schemas: %d\n", len(spec.Schemas))
	cmd.PrintErrf("  Security schemes: %d\n", len(spec.Security))

	gen, err := generator.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	outputs, err := gen.Generate(spec)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		for _, out := range outputs {
			cmd.Printf("// %s\n%s\n", out.Filename, out.Content)
		}
		return nil
	}

	for _, out := range outputs {
		path := filepath.Join(cfg.Kotlin.OutputDir, filepath.FromSlash(out.Filename))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.PrintErrf("%s %s\n", ok("Written:"), path)
	}

	return nil
}
