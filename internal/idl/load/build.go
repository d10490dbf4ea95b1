package load

import (
	"fmt"
	"strings"

	"github.com/Alia5/idlgen/internal/idl"
)

// Build converts the document into an immutable definition tree. It checks
// the document's shape only; the tree is assumed to be semantically valid.
func (d *Document) Build() (*idl.Context, error) {
	defs, err := buildDefinitions(d.Definitions, "definitions")
	if err != nil {
		return nil, err
	}
	return idl.NewContext(d.Source, d.Options, defs...), nil
}

func buildDefinitions(nodes []Node, path string) ([]idl.Definition, error) {
	defs := make([]idl.Definition, 0, len(nodes))
	for i, n := range nodes {
		p := fmt.Sprintf("%s[%d]", path, i)
		kind, name, err := n.kind(p)
		if err != nil {
			return nil, err
		}

		switch kind {
		case "module":
			children, err := buildDefinitions(n.Definitions, p+".definitions")
			if err != nil {
				return nil, err
			}
			defs = append(defs, idl.NewModule(name, children...))
		case "interface":
			exports, err := buildExports(n.Exports, p+".exports")
			if err != nil {
				return nil, err
			}
			defs = append(defs, idl.NewInterface(name, exports...))
		case "operation":
			return nil, fmt.Errorf("%s: operation %q is only allowed inside an interface", p, name)
		default:
			tc, err := n.typeCode(kind, name, p)
			if err != nil {
				return nil, err
			}
			defs = append(defs, idl.NewTypeDeclaration(tc))
		}
	}
	return defs, nil
}

func buildExports(nodes []Node, path string) ([]idl.Export, error) {
	exports := make([]idl.Export, 0, len(nodes))
	for i, n := range nodes {
		p := fmt.Sprintf("%s[%d]", path, i)
		kind, name, err := n.kind(p)
		if err != nil {
			return nil, err
		}

		switch kind {
		case "module", "interface":
			return nil, fmt.Errorf("%s: %s %q cannot be exported by an interface", p, kind, name)
		case "operation":
			op := idl.NewOperation(name, n.Type, members(n.Params)...)
			op.Oneway = n.Oneway
			exports = append(exports, op)
		default:
			tc, err := n.typeCode(kind, name, p)
			if err != nil {
				return nil, err
			}
			exports = append(exports, idl.NewTypeDeclaration(tc))
		}
	}
	return exports, nil
}

var kindKeys = []string{"module", "interface", "struct", "union", "enum", "typedef", "operation"}

func (n *Node) kind(path string) (kind, name string, err error) {
	set := map[string]string{
		"module":    n.Module,
		"interface": n.Interface,
		"struct":    n.Struct,
		"union":     n.Union,
		"enum":      n.Enum,
		"typedef":   n.Typedef,
		"operation": n.Operation,
	}
	var found []string
	for _, k := range kindKeys {
		if set[k] != "" {
			found = append(found, k)
		}
	}
	if len(found) != 1 {
		return "", "", fmt.Errorf("%s: node must set exactly one of %s (got %d: %s)",
			path, strings.Join(kindKeys, ", "), len(found), strings.Join(found, ", "))
	}
	return found[0], set[found[0]], nil
}

func (n *Node) typeCode(kind, name, path string) (*idl.TypeCode, error) {
	switch kind {
	case "struct":
		return idl.NewStruct(name, members(n.Members)...), nil
	case "union":
		if n.Discriminator == "" {
			return nil, fmt.Errorf("%s: union %q needs a discriminator type", path, name)
		}
		cases := make([]idl.UnionCase, 0, len(n.Cases))
		for _, c := range n.Cases {
			cases = append(cases, idl.UnionCase{
				Labels:  c.Labels,
				Default: c.Default,
				Member:  idl.Member{Name: c.Member.Name, Type: c.Member.Type},
			})
		}
		return idl.NewUnion(name, n.Discriminator, cases...), nil
	case "enum":
		return idl.NewEnum(name, n.Enumerators...), nil
	case "typedef":
		if n.Type == "" {
			return nil, fmt.Errorf("%s: typedef %q needs a type", path, name)
		}
		return idl.NewAlias(name, n.Type), nil
	default:
		return nil, fmt.Errorf("%s: %s %q is not a type declaration", path, kind, name)
	}
}

func members(in []Member) []idl.Member {
	out := make([]idl.Member, 0, len(in))
	for _, m := range in {
		out = append(out, idl.Member{Name: m.Name, Type: m.Type})
	}
	return out
}
