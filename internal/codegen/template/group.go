// Package template resolves named text/template templates and binds named
// attributes to them.
//
// A Group is the resolver: it holds every template of one target language,
// loaded from layered file systems of *.tmpl files. Resolve hands out a fresh
// Template instance; attributes are bound on the instance and Render
// evaluates it with the attributes as data, so a template refers to an
// attribute "struct" as {{.struct}}.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"
	"text/template"
)

// Ext is the file extension of template sources.
const Ext = ".tmpl"

// ErrUnknownTemplate is returned by Resolve for names the group does not hold.
var ErrUnknownTemplate = errors.New("unknown template")

// Group is a named, read-only set of templates. It is safe to share between
// goroutines once built.
type Group struct {
	name  string
	set   *template.Template
	names []string
}

// NewGroup parses every *.tmpl file at the root of each layer. Later layers
// override same-named templates from earlier ones. Template names are file
// names without the extension; files may also {{define}} helper templates.
func NewGroup(name string, funcs template.FuncMap, layers ...fs.FS) (*Group, error) {
	sources := make(map[string]string)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		matches, err := fs.Glob(layer, "*"+Ext)
		if err != nil {
			return nil, fmt.Errorf("list templates of group %s: %w", name, err)
		}
		for _, m := range matches {
			data, err := fs.ReadFile(layer, m)
			if err != nil {
				return nil, fmt.Errorf("read template %s: %w", m, err)
			}
			sources[strings.TrimSuffix(path.Base(m), Ext)] = string(data)
		}
	}

	names := slices.Sorted(maps.Keys(sources))
	set := template.New(name).Funcs(funcs).Option("missingkey=zero")
	for _, n := range names {
		if _, err := set.New(n).Parse(sources[n]); err != nil {
			return nil, fmt.Errorf("parse template %s/%s: %w", name, n, err)
		}
	}

	return &Group{name: name, set: set, names: names}, nil
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Names lists the file-backed templates of the group in sorted order.
func (g *Group) Names() []string { return slices.Clone(g.names) }

// Has reports whether name resolves.
func (g *Group) Has(name string) bool {
	return g.set.Lookup(name) != nil
}

// Resolve returns a new, attribute-free instance of the named template.
func (g *Group) Resolve(name string) (*Template, error) {
	if !g.Has(name) {
		return nil, fmt.Errorf("%w %q in group %s", ErrUnknownTemplate, name, g.name)
	}
	return &Template{name: name, group: g, attrs: make(map[string]any)}, nil
}
