// Package generator renders a definition tree into target-language source
// files laid out in one directory per module.
//
// A render pass is single-threaded and depth-first. It stops at the first
// failure; files written before the failure stay on disk.
package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/idlgen/internal/codegen/template"
	"github.com/Alia5/idlgen/internal/codegen/templates"
	"github.com/Alia5/idlgen/internal/idl"
	"github.com/Alia5/idlgen/internal/log"
)

// Generator renders definition trees with the template group of one target
// language. A Generator must not run two passes at the same time.
type Generator struct {
	lang      *Language
	group     *template.Group
	overlays  []fs.FS
	replace   bool
	logger    *slog.Logger
	artifacts log.ArtifactLogger
	metrics   Metrics
}

// Metrics counts the effects of the last render pass.
type Metrics struct {
	DirsCreated  int
	FilesWritten int
	FilesSkipped int
	TotalBytes   int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithReplace sets the overwrite policy applied to every write: when true,
// existing files are overwritten, otherwise they are skipped.
func WithReplace(replace bool) Option {
	return func(g *Generator) { g.replace = replace }
}

// WithTemplates layers template files over the language defaults. Same-named
// templates override the defaults; other files add extension templates.
func WithTemplates(layers ...fs.FS) Option {
	return func(g *Generator) { g.overlays = append(g.overlays, layers...) }
}

// WithArtifactLogger records the text of every written artifact.
func WithArtifactLogger(a log.ArtifactLogger) Option {
	return func(g *Generator) { g.artifacts = a }
}

// New creates a generator for the named language.
func New(lang string, opts ...Option) (*Generator, error) {
	l, err := LookupLanguage(lang)
	if err != nil {
		return nil, err
	}

	g := &Generator{lang: l}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.artifacts == nil {
		g.artifacts = log.NewArtifact(nil)
	}

	defaults, err := templates.FS(l.Name)
	if err != nil {
		return nil, err
	}
	layers := append([]fs.FS{defaults}, g.overlays...)
	g.group, err = template.NewGroup(l.Name, l.funcs(), layers...)
	if err != nil {
		return nil, fmt.Errorf("load %s templates: %w", l.Name, err)
	}
	for _, base := range []string{"main", string(HookInterface), string(HookStruct), string(HookUnion), string(HookEnum)} {
		if !g.group.Has(base) {
			return nil, &TemplateError{Template: base, Cause: template.ErrUnknownTemplate}
		}
	}

	return g, nil
}

// Language returns the target language.
func (g *Generator) Language() *Language { return g.lang }

// Metrics returns the counters of the last pass.
func (g *Generator) Metrics() Metrics { return g.metrics }

// Generate renders every root definition of ctx below outputDir. pkg is the
// package path of the root ("" for none); each module extends it by its name.
// outputDir is created when missing.
func (g *Generator) Generate(ctx *idl.Context, outputDir, pkg string, ext Extensions) error {
	g.metrics = Metrics{}

	if err := g.validateExtensions(ext); err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		g.logger.Error("Cannot create output directory", "path", outputDir, "error", err)
		return &StructuralError{Path: outputDir, Cause: err}
	}

	g.logger.Info("Generating types", "language", g.lang.Name, "source", ctx.Source(), "output", outputDir)

	if err := g.ProcessDefinitions(ctx, ctx.Definitions(), outputDir, pkg, ext); err != nil {
		return err
	}

	g.logger.Info("Type generation complete",
		"language", g.lang.Name,
		"written", g.metrics.FilesWritten,
		"skipped", g.metrics.FilesSkipped)
	return nil
}

// ProcessDefinitions walks defs depth-first in order. Modules become
// directories, interfaces and top-level type declarations become files.
func (g *Generator) ProcessDefinitions(ctx *idl.Context, defs []idl.Definition, outputDir, pkg string, ext Extensions) error {
	for _, def := range defs {
		switch d := def.(type) {
		case *idl.Module:
			dir := filepath.Join(outputDir, d.Name())
			if err := g.ensureDir(dir); err != nil {
				g.logger.Error("Cannot create directory for module", "module", d.ScopedName(), "path", dir, "error", err)
				return &StructuralError{Module: d.ScopedName(), Path: dir, Cause: err}
			}

			childPkg := d.Name()
			if pkg != "" {
				childPkg = pkg + "." + d.Name()
			}
			if err := g.ProcessDefinitions(ctx, d.Definitions, dir, childPkg, ext); err != nil {
				return err
			}

		case *idl.Interface:
			ifc, err := g.resolve(string(HookInterface))
			if err != nil {
				return err
			}
			ifc.SetAttribute("ctx", ctx).
				SetAttribute("parent", d.Parent()).
				SetAttribute("interface", d)

			if err := g.renderExports(ctx, d, ifc, ext); err != nil {
				return err
			}
			if err := g.emit(ctx, ifc, filepath.Join(outputDir, d.Name()+g.lang.Extension), pkg, ext); err != nil {
				return err
			}

		case *idl.TypeDeclaration:
			typ, err := g.renderType(ctx, d, ext)
			if err != nil {
				return err
			}
			if typ == nil {
				continue
			}
			if err := g.emit(ctx, typ, filepath.Join(outputDir, d.Name()+g.lang.Extension), pkg, ext); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unsupported definition %T", def)
		}
	}

	return nil
}

// emit renders body, wraps it in the main file template and writes it.
func (g *Generator) emit(ctx *idl.Context, body *template.Template, path, pkg string, ext Extensions) error {
	text, err := g.render(body)
	if err != nil {
		return err
	}
	file, err := g.fileTemplate(ctx, text, pkg, ext)
	if err != nil {
		return err
	}
	if err := g.writeFile(path, file, g.replace); err != nil {
		g.logger.Error("Cannot write file", "path", path, "error", err)
		return err
	}
	return nil
}

// ensureDir creates dir unless it already exists as a directory.
func (g *Generator) ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return ErrNotDirectory
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(dir, 0o755); err != nil {
			return err
		}
		g.metrics.DirsCreated++
		g.logger.Debug("Created module directory", "path", dir)
		return nil
	default:
		return err
	}
}

func (g *Generator) validateExtensions(ext Extensions) error {
	for _, h := range hooks {
		if name, ok := ext.Lookup(h); ok && !g.group.Has(name) {
			return &TemplateError{
				Template: name,
				Cause:    fmt.Errorf("extension for hook %s: %w", h, template.ErrUnknownTemplate),
			}
		}
	}
	return nil
}
