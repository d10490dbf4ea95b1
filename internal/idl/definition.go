// Package idl models an already-parsed, fully-resolved IDL definition tree.
//
// The tree is built once (by a parser or by the load package) and is
// immutable afterwards. Children are owned by their enclosing Module or
// Interface; the Parent back-reference is a plain, non-owning pointer whose
// lifetime never exceeds the tree's.
package idl

import "strings"

// ScopeSeparator joins the names of nested definitions in a scoped name.
const ScopeSeparator = "::"

// Definition is a node of the definition tree. The set of implementations is
// closed: *Module, *Interface and *TypeDeclaration.
type Definition interface {
	Name() string
	// Parent returns the lexically enclosing definition, or nil at top level.
	Parent() Definition
	ScopedName() string

	setParent(Definition)
	isDefinition()
}

// Export is a member of an Interface. The set of implementations is closed:
// *TypeDeclaration and *Operation.
type Export interface {
	Name() string
	Parent() Definition

	setParent(Definition)
	isExport()
}

type node struct {
	name   string
	parent Definition
}

func (n *node) Name() string          { return n.name }
func (n *node) Parent() Definition    { return n.parent }
func (n *node) setParent(p Definition) { n.parent = p }

func scopedName(name string, parent Definition) string {
	if parent == nil {
		return name
	}
	return parent.ScopedName() + ScopeSeparator + name
}

// Module is a named scope owning an ordered list of definitions. The order
// determines emission order.
type Module struct {
	node
	Definitions []Definition
}

// NewModule creates a module and adopts the given definitions as children.
func NewModule(name string, defs ...Definition) *Module {
	m := &Module{node: node{name: name}, Definitions: defs}
	for _, d := range defs {
		d.setParent(m)
	}
	return m
}

func (m *Module) ScopedName() string { return scopedName(m.name, m.parent) }
func (*Module) isDefinition()         {}

// Interface owns an ordered list of exports.
type Interface struct {
	node
	Exports []Export
}

// NewInterface creates an interface and adopts the given exports.
func NewInterface(name string, exports ...Export) *Interface {
	i := &Interface{node: node{name: name}, Exports: exports}
	for _, e := range exports {
		e.setParent(i)
	}
	return i
}

func (i *Interface) ScopedName() string { return scopedName(i.name, i.parent) }
func (*Interface) isDefinition()         {}

// TypeDeclarations returns the interface's exports that declare types, in
// declaration order.
func (i *Interface) TypeDeclarations() []*TypeDeclaration {
	var out []*TypeDeclaration
	for _, e := range i.Exports {
		if td, ok := e.(*TypeDeclaration); ok {
			out = append(out, td)
		}
	}
	return out
}

// Operations returns the interface's operations in declaration order.
func (i *Interface) Operations() []*Operation {
	var out []*Operation
	for _, e := range i.Exports {
		if op, ok := e.(*Operation); ok {
			out = append(out, op)
		}
	}
	return out
}

// TypeDeclaration names a TypeCode. It can appear at module level or as an
// interface export.
type TypeDeclaration struct {
	node
	TypeCode *TypeCode
}

// NewTypeDeclaration declares tc under its own name.
func NewTypeDeclaration(tc *TypeCode) *TypeDeclaration {
	return &TypeDeclaration{node: node{name: tc.Name}, TypeCode: tc}
}

func (t *TypeDeclaration) ScopedName() string { return scopedName(t.name, t.parent) }
func (*TypeDeclaration) isDefinition()         {}
func (*TypeDeclaration) isExport()             {}

// Operation is an interface method. Operations are carried in the tree but
// produce no artifact of their own.
type Operation struct {
	node
	Params     []Member
	ReturnType string
	Oneway     bool
}

// NewOperation creates an operation.
func NewOperation(name, returnType string, params ...Member) *Operation {
	return &Operation{node: node{name: name}, Params: params, ReturnType: returnType}
}

func (*Operation) isExport() {}

// Walk visits defs depth-first in declaration order, including type
// declarations exported by interfaces. It stops early when fn returns false.
func Walk(defs []Definition, fn func(Definition) bool) bool {
	for _, d := range defs {
		if !fn(d) {
			return false
		}
		switch d := d.(type) {
		case *Module:
			if !Walk(d.Definitions, fn) {
				return false
			}
		case *Interface:
			for _, td := range d.TypeDeclarations() {
				if !fn(td) {
					return false
				}
			}
		case *TypeDeclaration:
		}
	}
	return true
}

// SplitScopedName splits "a::b::C" into its components.
func SplitScopedName(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ScopeSeparator)
}
