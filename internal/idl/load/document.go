// Package load reads definition documents (YAML, TOML, JSON or MessagePack
// descriptions of an already-resolved definition tree) and builds an
// idl.Context from them.
package load

// Document is the serialized form of a definition tree.
type Document struct {
	Source      string            `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty" msgpack:"source,omitempty"`
	Options     map[string]string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty" msgpack:"options,omitempty"`
	Definitions []Node            `json:"definitions" yaml:"definitions" toml:"definitions" msgpack:"definitions"`
}

// Node is one definition or export. Exactly one of the kind keys (Module,
// Interface, Struct, Union, Enum, Typedef, Operation) must be set; it carries
// the node's name.
type Node struct {
	Module    string `json:"module,omitempty" yaml:"module,omitempty" toml:"module,omitempty" msgpack:"module,omitempty"`
	Interface string `json:"interface,omitempty" yaml:"interface,omitempty" toml:"interface,omitempty" msgpack:"interface,omitempty"`
	Struct    string `json:"struct,omitempty" yaml:"struct,omitempty" toml:"struct,omitempty" msgpack:"struct,omitempty"`
	Union     string `json:"union,omitempty" yaml:"union,omitempty" toml:"union,omitempty" msgpack:"union,omitempty"`
	Enum      string `json:"enum,omitempty" yaml:"enum,omitempty" toml:"enum,omitempty" msgpack:"enum,omitempty"`
	Typedef   string `json:"typedef,omitempty" yaml:"typedef,omitempty" toml:"typedef,omitempty" msgpack:"typedef,omitempty"`
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty" toml:"operation,omitempty" msgpack:"operation,omitempty"`

	Definitions []Node `json:"definitions,omitempty" yaml:"definitions,omitempty" toml:"definitions,omitempty" msgpack:"definitions,omitempty"`
	Exports     []Node `json:"exports,omitempty" yaml:"exports,omitempty" toml:"exports,omitempty" msgpack:"exports,omitempty"`

	Members       []Member `json:"members,omitempty" yaml:"members,omitempty" toml:"members,omitempty" msgpack:"members,omitempty"`
	Discriminator string   `json:"discriminator,omitempty" yaml:"discriminator,omitempty" toml:"discriminator,omitempty" msgpack:"discriminator,omitempty"`
	Cases         []Case   `json:"cases,omitempty" yaml:"cases,omitempty" toml:"cases,omitempty" msgpack:"cases,omitempty"`
	Enumerators   []string `json:"enumerators,omitempty" yaml:"enumerators,omitempty" toml:"enumerators,omitempty" msgpack:"enumerators,omitempty"`

	// Type is the aliased type of a typedef or the return type of an operation.
	Type   string   `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty" msgpack:"type,omitempty"`
	Params []Member `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty" msgpack:"params,omitempty"`
	Oneway bool     `json:"oneway,omitempty" yaml:"oneway,omitempty" toml:"oneway,omitempty" msgpack:"oneway,omitempty"`
}

type Member struct {
	Name string `json:"name" yaml:"name" toml:"name" msgpack:"name"`
	Type string `json:"type" yaml:"type" toml:"type" msgpack:"type"`
}

type Case struct {
	Labels  []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty" msgpack:"labels,omitempty"`
	Default bool     `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty" msgpack:"default,omitempty"`
	Member  Member   `json:"member" yaml:"member" toml:"member" msgpack:"member"`
}
