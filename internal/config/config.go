package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/touchin/ticodegen/internal/datestrategy"
	"github.com/touchin/ticodegen/internal/enrich"
)

// DefaultFile is picked up from the working directory when --config is not set.
const DefaultFile = "ticodegen.yaml"

type Config struct {
	Spec           string         `koanf:"spec"`
	Templates      TemplateConfig `koanf:"templates"`
	ExcludeSchemas []string       `koanf:"exclude-schemas"`
	ValidateSpec   bool           `koanf:"validate"`
	Kotlin         KotlinConfig   `koanf:"kotlin"`
}

type KotlinConfig struct {
	OutputDir          string `koanf:"output-dir"`
	ProjectName        string `koanf:"project-name"`
	GroupID            string `koanf:"group-id"`
	DateLibrary        string `koanf:"date-library"`
	AdapterGranularity string `koanf:"adapter-granularity"`
	LenientDateFormats bool   `koanf:"lenient-date-formats"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

func defaults() map[string]any {
	return map[string]any{
		"kotlin.output-dir":          "generated",
		"kotlin.project-name":        "SwaggerAPI",
		"kotlin.group-id":            "ru.touchin",
		"kotlin.date-library":        string(datestrategy.Default),
		"kotlin.adapter-granularity": string(enrich.GranularityModel),
	}
}

// BindCommonFlags binds language-agnostic flags to the generate command
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: "+DefaultFile+")")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.String("templates", "", "Custom templates directory")
	flags.StringSlice("exclude-schemas", nil, "Schemas to exclude")
	flags.Bool("validate", false, "Validate the OpenAPI document before generating")
	flags.Bool("dry-run", false, "Print output without writing files")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

// BindKotlinFlags binds the flags of the kotlin generator.
func BindKotlinFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("output-dir", "o", "", "Output directory for the generated project")
	flags.StringP("project-name", "p", "", "Project name, the last package segment")
	flags.StringP("group-id", "g", "", "Group id, the package prefix")
	flags.String("date-library", "", "Date library: "+strings.Join(strategyNames(), ", "))
	flags.String("adapter-granularity", "", "Adapter granularity: model, enum")
	flags.Bool("lenient-date-formats", false, "Skip invalid custom date formats instead of failing")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if v := getStringSlice("exclude-schemas"); len(v) > 0 {
		m["exclude-schemas"] = v
	}
	if flagChanged("validate") {
		m["validate"] = getBool("validate")
	}

	// Kotlin-specific flags (under kotlin. namespace)
	if v := getString("output-dir"); v != "" {
		m["kotlin.output-dir"] = v
	}
	if v := getString("project-name"); v != "" {
		m["kotlin.project-name"] = v
	}
	if v := getString("group-id"); v != "" {
		m["kotlin.group-id"] = v
	}
	if v := getString("date-library"); v != "" {
		m["kotlin.date-library"] = v
	}
	if v := getString("adapter-granularity"); v != "" {
		m["kotlin.adapter-granularity"] = v
	}
	if flagChanged("lenient-date-formats") {
		m["kotlin.lenient-date-formats"] = getBool("lenient-date-formats")
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Kotlin.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Kotlin.ProjectName == "" {
		return fmt.Errorf("project name is required")
	}
	if c.Kotlin.GroupID == "" {
		return fmt.Errorf("group id is required")
	}
	if _, err := datestrategy.Parse(c.Kotlin.DateLibrary); err != nil {
		return fmt.Errorf("invalid date library: %w", err)
	}
	if _, err := enrich.ParseGranularity(c.Kotlin.AdapterGranularity); err != nil {
		return fmt.Errorf("invalid adapter granularity: %w", err)
	}
	return nil
}

// PackageName is the root package of the generated project.
func (c *Config) PackageName() string {
	return c.Kotlin.GroupID + "." + c.Kotlin.ProjectName
}

func (c *Config) ModelPackage() string {
	return c.PackageName() + ".models"
}

func strategyNames() []string {
	var names []string
	for _, s := range datestrategy.Strategies() {
		names = append(names, string(s))
	}
	return names
}
