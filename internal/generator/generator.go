package generator

import (
	"fmt"

	"github.com/touchin/ticodegen/internal/config"
	"github.com/touchin/ticodegen/internal/datestrategy"
	"github.com/touchin/ticodegen/internal/enrich"
	"github.com/touchin/ticodegen/internal/kotlin"
	"github.com/touchin/ticodegen/internal/model"
	"github.com/touchin/ticodegen/internal/registry"
	"github.com/touchin/ticodegen/internal/targets"
	"github.com/touchin/ticodegen/internal/targets/models"
	"github.com/touchin/ticodegen/internal/targets/support"
	"github.com/touchin/ticodegen/internal/templates"
	embeddedtmpl "github.com/touchin/ticodegen/templates"
	"go.uber.org/zap"
)

type Generator struct {
	config *config.Config
	engine templates.Engine
	logger *zap.Logger

	strategy    datestrategy.Strategy
	granularity enrich.Granularity
}

type Output struct {
	Filename string
	Content  string
}

type target interface {
	Name() string
	Generate(engine templates.Engine, ctx *targets.Context) ([]targets.File, error)
}

func New(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	strategy, err := datestrategy.Parse(cfg.Kotlin.DateLibrary)
	if err != nil {
		return nil, err
	}
	granularity, err := enrich.ParseGranularity(cfg.Kotlin.AdapterGranularity)
	if err != nil {
		return nil, err
	}

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, kotlin.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}
	for _, name := range engine.Overrides() {
		logger.Info("using custom template", zap.String("template", name))
	}

	return &Generator{
		config:      cfg,
		engine:      engine,
		logger:      logger.Named("generator"),
		strategy:    strategy,
		granularity: granularity,
	}, nil
}

// Generate runs one full generation over spec. Every call starts from fresh
// type tables and registries.
func (g *Generator) Generate(spec *model.Spec) ([]Output, error) {
	ctx, err := g.enrich(spec)
	if err != nil {
		return nil, err
	}

	var outputs []Output
	for _, t := range []target{models.New(), support.New()} {
		files, err := t.Generate(g.engine, ctx)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", t.Name(), err)
		}
		for _, f := range files {
			outputs = append(outputs, Output{Filename: f.Path, Content: f.Content})
		}
		g.logger.Debug("rendered target", zap.String("target", t.Name()), zap.Int("files", len(files)))
	}

	return outputs, nil
}

func (g *Generator) enrich(spec *model.Spec) (*targets.Context, error) {
	tables := kotlin.DefaultTypeTables()
	if err := g.strategy.Apply(tables); err != nil {
		return nil, fmt.Errorf("applying date library: %w", err)
	}

	modelPackage := g.config.ModelPackage()
	host := kotlin.NewHost(spec, tables, modelPackage, g.config.ExcludeSchemas)

	regs := registry.New()
	pass := enrich.NewPass(host, enrich.Options{
		ModelPackage:       modelPackage,
		Granularity:        g.granularity,
		LenientDateFormats: g.config.Kotlin.LenientDateFormats,
		Logger:             g.logger,
	})

	ms := host.Models()
	for _, m := range ms {
		if err := pass.Model(regs, m); err != nil {
			return nil, fmt.Errorf("enriching models: %w", err)
		}
	}

	securities := host.Securities()
	pass.Securities(securities)

	support := pass.SupportingData(regs)
	g.logger.Info("enriched models",
		zap.Int("models", len(ms)),
		zap.Int("aliases", len(host.AliasNames())),
		zap.Int("date_formats", len(support.DateFormats)),
		zap.Int("adapters", len(support.Adapters)),
		zap.String("date_library", tables.DateLibrary),
	)

	return &targets.Context{
		ProjectName:  g.config.Kotlin.ProjectName,
		GroupID:      g.config.Kotlin.GroupID,
		PackageName:  g.config.PackageName(),
		ModelPackage: modelPackage,
		Tables:       tables,
		Models:       ms,
		Securities:   securities,
		Support:      support,
	}, nil
}
