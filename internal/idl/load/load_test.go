package load

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/idlgen/internal/idl"
)

const shapesYAML = `
source: shapes.idl
options:
  go_package: shapes
definitions:
  - module: a
    definitions:
      - struct: Point
        members:
          - {name: x, type: long}
          - {name: y, type: long}
      - module: b
        definitions:
          - enum: Color
            enumerators: [RED, GREEN]
  - interface: Calc
    exports:
      - union: Choice
        discriminator: long
        cases:
          - labels: ["1", "2"]
            member: {name: i, type: long}
          - default: true
            member: {name: s, type: string}
      - operation: add
        type: long
        params:
          - {name: a, type: long}
      - typedef: Meters
        type: double
`

const shapesTOML = `
source = "shapes.idl"

[options]
go_package = "shapes"

[[definitions]]
module = "a"

  [[definitions.definitions]]
  struct = "Point"
  members = [{name = "x", type = "long"}, {name = "y", type = "long"}]

  [[definitions.definitions]]
  module = "b"

    [[definitions.definitions.definitions]]
    enum = "Color"
    enumerators = ["RED", "GREEN"]

[[definitions]]
interface = "Calc"

  [[definitions.exports]]
  union = "Choice"
  discriminator = "long"
  cases = [
    {labels = ["1", "2"], member = {name = "i", type = "long"}},
    {default = true, member = {name = "s", type = "string"}},
  ]

  [[definitions.exports]]
  operation = "add"
  type = "long"
  params = [{name = "a", type = "long"}]

  [[definitions.exports]]
  typedef = "Meters"
  type = "double"
`

const shapesJSON = `{
  "source": "shapes.idl",
  "options": {"go_package": "shapes"},
  "definitions": [
    {"module": "a", "definitions": [
      {"struct": "Point", "members": [{"name": "x", "type": "long"}, {"name": "y", "type": "long"}]},
      {"module": "b", "definitions": [{"enum": "Color", "enumerators": ["RED", "GREEN"]}]}
    ]},
    {"interface": "Calc", "exports": [
      {"union": "Choice", "discriminator": "long", "cases": [
        {"labels": ["1", "2"], "member": {"name": "i", "type": "long"}},
        {"default": true, "member": {"name": "s", "type": "string"}}
      ]},
      {"operation": "add", "type": "long", "params": [{"name": "a", "type": "long"}]},
      {"typedef": "Meters", "type": "double"}
    ]}
  ]
}`

func assertShapes(t *testing.T, ctx *idl.Context) {
	t.Helper()

	assert.Equal(t, "shapes.idl", ctx.Source())
	assert.Equal(t, "shapes", ctx.Option("go_package"))

	defs := ctx.Definitions()
	require.Len(t, defs, 2)

	a, ok := defs[0].(*idl.Module)
	require.True(t, ok)
	assert.Equal(t, "a", a.Name())
	require.Len(t, a.Definitions, 2)

	point, ok := ctx.Lookup("a::Point")
	require.True(t, ok)
	pointTC := point.(*idl.TypeDeclaration).TypeCode
	assert.Equal(t, idl.KindStruct, pointTC.Kind)
	assert.Equal(t, []idl.Member{{Name: "x", Type: "long"}, {Name: "y", Type: "long"}}, pointTC.Members)

	color, ok := ctx.Lookup("a::b::Color")
	require.True(t, ok)
	assert.Equal(t, []string{"RED", "GREEN"}, color.(*idl.TypeDeclaration).TypeCode.Enumerators)

	calc, ok := defs[1].(*idl.Interface)
	require.True(t, ok)
	require.Len(t, calc.Exports, 3)

	choice := calc.TypeDeclarations()[0].TypeCode
	assert.Equal(t, idl.KindUnion, choice.Kind)
	assert.Equal(t, "long", choice.Discriminator)
	require.Len(t, choice.Cases, 2)
	assert.Equal(t, []string{"1", "2"}, choice.Cases[0].Labels)
	def, ok := choice.DefaultCase()
	require.True(t, ok)
	assert.Equal(t, "s", def.Member.Name)

	ops := calc.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "add", ops[0].Name())
	assert.Equal(t, "long", ops[0].ReturnType)
	assert.Same(t, calc, ops[0].Parent())

	meters, ok := ctx.Lookup("Calc::Meters")
	require.True(t, ok)
	assert.Equal(t, idl.KindAlias, meters.(*idl.TypeDeclaration).TypeCode.Kind)
	assert.Equal(t, "double", meters.(*idl.TypeDeclaration).TypeCode.ContentType)
}

func TestReadFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, shapesYAML},
		{FormatTOML, shapesTOML},
		{FormatJSON, shapesJSON},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			ctx, err := Read(strings.NewReader(tt.data), tt.format, "ignored")
			require.NoError(t, err)
			assertShapes(t, ctx)
		})
	}
}

func TestReadMsgpack(t *testing.T) {
	doc, err := Decode([]byte(shapesYAML), FormatYAML)
	require.NoError(t, err)

	data, err := Encode(doc, FormatMsgpack)
	require.NoError(t, err)

	ctx, err := Read(bytes.NewReader(data), FormatMsgpack, "ignored")
	require.NoError(t, err)
	assertShapes(t, ctx)
}

func TestReadDefaultsSourceToName(t *testing.T) {
	ctx, err := Read(strings.NewReader("definitions:\n  - enum: E\n    enumerators: [A]\n"), FormatYAML, "e.yaml")
	require.NoError(t, err)
	assert.Equal(t, "e.yaml", ctx.Source())
}

func TestJSONRejectsUnknownFields(t *testing.T) {
	_, err := Read(strings.NewReader(`{"definitions": [], "bogus": 1}`), FormatJSON, "x.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x.json")
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no kind",
			yaml:    "definitions:\n  - members: []\n",
			wantErr: "definitions[0]: node must set exactly one of",
		},
		{
			name:    "two kinds",
			yaml:    "definitions:\n  - struct: A\n    enum: A\n",
			wantErr: "(got 2: struct, enum)",
		},
		{
			name:    "operation at module level",
			yaml:    "definitions:\n  - module: m\n    definitions:\n      - operation: op\n",
			wantErr: `definitions[0].definitions[0]: operation "op" is only allowed inside an interface`,
		},
		{
			name:    "module exported by interface",
			yaml:    "definitions:\n  - interface: I\n    exports:\n      - struct: S\n      - module: m\n",
			wantErr: `definitions[0].exports[1]: module "m" cannot be exported by an interface`,
		},
		{
			name:    "union without discriminator",
			yaml:    "definitions:\n  - union: U\n",
			wantErr: `union "U" needs a discriminator type`,
		},
		{
			name:    "typedef without type",
			yaml:    "definitions:\n  - typedef: T\n",
			wantErr: `typedef "T" needs a type`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.yaml), FormatYAML, "bad.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"defs.yaml":    FormatYAML,
		"defs.YML":     FormatYAML,
		"defs.toml":    FormatTOML,
		"defs.json":    FormatJSON,
		"defs.msgpack": FormatMsgpack,
		"defs.mp":      FormatMsgpack,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("defs.idl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `".idl"`)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.toml")
	require.NoError(t, os.WriteFile(path, []byte(shapesTOML), 0o644))

	ctx, err := File(path)
	require.NoError(t, err)
	assertShapes(t, ctx)

	_, err = File(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
