package cmd

import (
	"log/slog"
	"os"

	"github.com/Alia5/idlgen/internal/codegen/generator"
	"github.com/Alia5/idlgen/internal/idl/load"
	"github.com/Alia5/idlgen/internal/log"
)

// RenderFlags are shared by every command that runs a render pass.
type RenderFlags struct {
	Input     string            `arg:"" name:"input" help:"Definition document (.yaml, .yml, .toml, .json, .msgpack) or '-' for stdin"`
	Output    string            `help:"Output directory" default:"." type:"path" env:"IDLGEN_OUTPUT"`
	Package   string            `help:"Package path of the top-level definitions (e.g. com.acme.idl)" env:"IDLGEN_PACKAGE"`
	Lang      string            `help:"Target language: java or go" default:"java" enum:"java,go" env:"IDLGEN_LANG"`
	Replace   bool              `help:"Overwrite existing files instead of skipping them" env:"IDLGEN_REPLACE"`
	Templates string            `help:"Directory of *.tmpl files layered over the default templates" type:"existingdir" env:"IDLGEN_TEMPLATES"`
	Extension map[string]string `help:"Extension template per hook: interface, main, struct_type, union_type, enum_type (hook=template)"`
}

// Generate renders a definition document once.
type Generate struct {
	RenderFlags `embed:""`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger, artifacts log.ArtifactLogger) error {
	logger.Info("Starting IDL type generation", "input", c.Input, "output", c.Output, "lang", c.Lang)

	gen, err := c.newGenerator(logger, artifacts)
	if err != nil {
		return err
	}
	return c.render(gen)
}

func (r *RenderFlags) newGenerator(logger *slog.Logger, artifacts log.ArtifactLogger) (*generator.Generator, error) {
	opts := []generator.Option{
		generator.WithLogger(logger),
		generator.WithReplace(r.Replace),
		generator.WithArtifactLogger(artifacts),
	}
	if r.Templates != "" {
		opts = append(opts, generator.WithTemplates(os.DirFS(r.Templates)))
	}
	return generator.New(r.Lang, opts...)
}

func (r *RenderFlags) render(gen *generator.Generator) error {
	ext, err := generator.ParseExtensions(r.Extension)
	if err != nil {
		return err
	}
	ctx, err := load.File(r.Input)
	if err != nil {
		return err
	}
	return gen.Generate(ctx, r.Output, r.Package, ext)
}
