package idl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() (*Module, *Interface, *TypeDeclaration, *TypeDeclaration) {
	color := NewTypeDeclaration(NewEnum("Color", "RED", "GREEN"))
	req := NewTypeDeclaration(NewStruct("Req", Member{Name: "a", Type: "long"}))
	svc := NewInterface("Svc", req, NewOperation("ping", "void"))
	root := NewModule("a", NewModule("b", color), svc)
	return root, svc, color, req
}

func TestScopedNames(t *testing.T) {
	root, svc, color, req := sampleTree()
	NewContext("x.idl", nil, root)

	assert.Equal(t, "a", root.ScopedName())
	assert.Equal(t, "a::b::Color", color.ScopedName())
	assert.Equal(t, "a::Svc", svc.ScopedName())
	assert.Equal(t, "a::Svc::Req", req.ScopedName())
}

func TestParents(t *testing.T) {
	root, svc, color, req := sampleTree()
	NewContext("x.idl", nil, root)

	assert.Nil(t, root.Parent())
	require.NotNil(t, color.Parent())
	assert.Equal(t, "b", color.Parent().Name())
	assert.Same(t, root, svc.Parent())
	assert.Same(t, svc, req.Parent())
	assert.Same(t, svc, svc.Operations()[0].Parent())
}

func TestContextDetachesRoots(t *testing.T) {
	inner := NewTypeDeclaration(NewStruct("P"))
	NewModule("owner", inner)
	require.NotNil(t, inner.Parent())

	ctx := NewContext("x.idl", nil, inner)
	assert.Nil(t, inner.Parent())
	assert.Equal(t, "P", inner.ScopedName())

	d, ok := ctx.Lookup("P")
	require.True(t, ok)
	assert.Same(t, inner, d)
}

func TestInterfaceExportViews(t *testing.T) {
	_, svc, _, req := sampleTree()

	tds := svc.TypeDeclarations()
	require.Len(t, tds, 1)
	assert.Same(t, req, tds[0])

	ops := svc.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "ping", ops[0].Name())
	assert.Equal(t, "void", ops[0].ReturnType)
}

func TestContextLookup(t *testing.T) {
	root, _, color, req := sampleTree()
	ctx := NewContext("x.idl", map[string]string{"go_package": "shapes"}, root)

	tests := []struct {
		name string
		want Definition
	}{
		{"a", root},
		{"a::b::Color", color},
		{"a::Svc::Req", req},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ctx.Lookup(tt.name)
			require.True(t, ok)
			assert.Same(t, tt.want, d)
		})
	}

	_, ok := ctx.Lookup("a::Svc::ping")
	assert.False(t, ok, "operations are not definitions")
	_, ok = ctx.Lookup("Color")
	assert.False(t, ok)

	assert.Equal(t, 5, ctx.Len())
	assert.Equal(t, "x.idl", ctx.Source())
	assert.Equal(t, "shapes", ctx.Option("go_package"))
	assert.Empty(t, ctx.Option("missing"))
}

func TestContextIsolation(t *testing.T) {
	opts := map[string]string{"k": "v"}
	root, _, _, _ := sampleTree()
	ctx := NewContext("x.idl", opts, root)

	opts["k"] = "changed"
	assert.Equal(t, "v", ctx.Option("k"))

	defs := ctx.Definitions()
	defs[0] = nil
	assert.Same(t, root, ctx.Definitions()[0])

	got := ctx.Options()
	got["k"] = "other"
	assert.Equal(t, "v", ctx.Option("k"))
}

func TestWalkOrder(t *testing.T) {
	root, _, _, _ := sampleTree()
	top := NewTypeDeclaration(NewStruct("Top"))

	var seen []string
	Walk([]Definition{root, top}, func(d Definition) bool {
		seen = append(seen, d.ScopedName())
		return true
	})
	assert.Equal(t, []string{"a", "a::b", "a::b::Color", "a::Svc", "a::Svc::Req", "Top"}, seen)
}

func TestWalkStopsEarly(t *testing.T) {
	root, _, _, _ := sampleTree()

	var seen []string
	completed := Walk([]Definition{root}, func(d Definition) bool {
		seen = append(seen, d.Name())
		return d.Name() != "Color"
	})
	assert.False(t, completed)
	assert.Equal(t, []string{"a", "b", "Color"}, seen)
}

func TestSplitScopedName(t *testing.T) {
	assert.Nil(t, SplitScopedName(""))
	assert.Equal(t, []string{"Color"}, SplitScopedName("Color"))
	assert.Equal(t, []string{"a", "b", "Color"}, SplitScopedName("a::b::Color"))
}
