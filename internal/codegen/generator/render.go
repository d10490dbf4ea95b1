package generator

import (
	"github.com/Alia5/idlgen/internal/codegen/template"
	"github.com/Alia5/idlgen/internal/idl"
)

// renderType binds a type declaration to the template of its kind. The
// returned template is not rendered yet so callers can keep composing it.
// Kinds without a template (aliases) yield nil and no error.
func (g *Generator) renderType(ctx *idl.Context, td *idl.TypeDeclaration, ext Extensions) (*template.Template, error) {
	var hook Hook
	var attr string

	switch td.TypeCode.Kind {
	case idl.KindStruct:
		hook, attr = HookStruct, "struct"
	case idl.KindUnion:
		hook, attr = HookUnion, "union"
	case idl.KindEnum:
		hook, attr = HookEnum, "enum"
	case idl.KindAlias:
		g.logger.Debug("No standalone template for type kind", "type", td.ScopedName(), "kind", td.TypeCode.Kind)
		return nil, nil
	default:
		g.logger.Debug("Unhandled type kind", "type", td.ScopedName(), "kind", td.TypeCode.Kind)
		return nil, nil
	}

	g.logger.Debug("Processing type declaration", "type", td.ScopedName(), "kind", td.TypeCode.Kind)

	typ, err := g.resolve(string(hook))
	if err != nil {
		return nil, err
	}
	typ.SetAttribute(attr, td.TypeCode)

	if name, ok := ext.Lookup(hook); ok {
		extension, err := g.resolve(name)
		if err != nil {
			return nil, err
		}
		extension.SetAttribute(attr, td.TypeCode).
			SetAttribute("ctx", ctx).
			SetAttribute("parent", td.Parent())
		text, err := g.render(extension)
		if err != nil {
			return nil, err
		}
		typ.SetAttribute("extension", text)
	}

	typ.SetAttribute("ctx", ctx).
		SetAttribute("parent", td.Parent())
	return typ, nil
}

// renderExports renders the interface extension and every type declaration
// exported by ifc into the interface template, in declaration order. Exports
// without a template are skipped without error.
func (g *Generator) renderExports(ctx *idl.Context, ifc *idl.Interface, ifcTmpl *template.Template, ext Extensions) error {
	if name, ok := ext.Lookup(HookInterface); ok {
		extension, err := g.resolve(name)
		if err != nil {
			return err
		}
		extension.SetAttribute("ctx", ctx).
			SetAttribute("parent", ifc.Parent()).
			SetAttribute("interface", ifc)
		text, err := g.render(extension)
		if err != nil {
			return err
		}
		ifcTmpl.SetAttribute("extension", text)
	}

	for _, export := range ifc.Exports {
		switch e := export.(type) {
		case *idl.TypeDeclaration:
			typ, err := g.renderType(ctx, e, ext)
			if err != nil {
				return err
			}
			if typ == nil {
				continue
			}
			text, err := g.render(typ)
			if err != nil {
				return err
			}
			ifcTmpl.AddAttribute("exports", text)
		case *idl.Operation:
		}
	}

	return nil
}

// fileTemplate wraps a rendered body in the main template of the language.
func (g *Generator) fileTemplate(ctx *idl.Context, body, pkg string, ext Extensions) (*template.Template, error) {
	st, err := g.resolve("main")
	if err != nil {
		return nil, err
	}
	st.SetAttribute("ctx", ctx).
		SetAttribute("definitions", body)
	if pkg != "" {
		st.SetAttribute("package", pkg)
	}

	if name, ok := ext.Lookup(HookMain); ok {
		extension, err := g.resolve(name)
		if err != nil {
			return nil, err
		}
		extension.SetAttribute("ctx", ctx)
		text, err := g.render(extension)
		if err != nil {
			return nil, err
		}
		st.SetAttribute("extension", text)
	}

	return st, nil
}

func (g *Generator) resolve(name string) (*template.Template, error) {
	t, err := g.group.Resolve(name)
	if err != nil {
		return nil, &TemplateError{Template: name, Cause: err}
	}
	return t, nil
}

func (g *Generator) render(t *template.Template) (string, error) {
	text, err := t.Render()
	if err != nil {
		return "", &TemplateError{Template: t.Name(), Cause: err}
	}
	return text, nil
}
