package idl

import (
	"maps"
	"slices"
)

// Context is the compilation state shared read-only by a whole render pass.
type Context struct {
	source      string
	definitions []Definition
	symbols     map[string]Definition
	options     map[string]string
}

// NewContext wraps root definitions into a Context and indexes every
// definition by scoped name. defs must not be modified afterwards.
func NewContext(source string, options map[string]string, defs ...Definition) *Context {
	c := &Context{
		source:      source,
		definitions: defs,
		symbols:     make(map[string]Definition),
		options:     maps.Clone(options),
	}
	for _, d := range defs {
		d.setParent(nil)
	}
	Walk(defs, func(d Definition) bool {
		c.symbols[d.ScopedName()] = d
		return true
	})
	return c
}

// Source is the IDL file the tree was parsed from.
func (c *Context) Source() string { return c.source }

// Definitions returns the root definitions in declaration order.
func (c *Context) Definitions() []Definition { return slices.Clone(c.definitions) }

// Lookup resolves a scoped name such as "a::b::Color".
func (c *Context) Lookup(scopedName string) (Definition, bool) {
	d, ok := c.symbols[scopedName]
	return d, ok
}

// Option returns a global option, or "" when unset.
func (c *Context) Option(key string) string { return c.options[key] }

func (c *Context) Options() map[string]string { return maps.Clone(c.options) }

// Len reports the number of indexed definitions.
func (c *Context) Len() int { return len(c.symbols) }
