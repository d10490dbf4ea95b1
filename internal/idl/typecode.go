package idl

import "fmt"

// Kind tags the shape of a TypeCode.
type Kind int

const (
	KindStruct Kind = iota + 1
	KindUnion
	KindEnum
	// KindAlias covers typedefs. Aliases need no standalone artifact.
	KindAlias
)

var kindNames = map[Kind]string{
	KindStruct: "struct",
	KindUnion:  "union",
	KindEnum:   "enum",
	KindAlias:  "alias",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Member is a named, typed slot: a struct member, union branch or operation
// parameter. Type is the IDL spelling ("long", "string", "sequence<short>",
// or a scoped name).
type Member struct {
	Name string
	Type string
}

// UnionCase is one branch of a union.
type UnionCase struct {
	Labels  []string
	Default bool
	Member  Member
}

// TypeCode describes the shape of a declared type. Only the fields matching
// Kind are meaningful.
type TypeCode struct {
	Kind Kind
	Name string

	// KindStruct
	Members []Member

	// KindUnion
	Discriminator string
	Cases         []UnionCase

	// KindEnum
	Enumerators []string

	// KindAlias
	ContentType string
}

func NewStruct(name string, members ...Member) *TypeCode {
	return &TypeCode{Kind: KindStruct, Name: name, Members: members}
}

func NewUnion(name, discriminator string, cases ...UnionCase) *TypeCode {
	return &TypeCode{Kind: KindUnion, Name: name, Discriminator: discriminator, Cases: cases}
}

func NewEnum(name string, enumerators ...string) *TypeCode {
	return &TypeCode{Kind: KindEnum, Name: name, Enumerators: enumerators}
}

func NewAlias(name, contentType string) *TypeCode {
	return &TypeCode{Kind: KindAlias, Name: name, ContentType: contentType}
}

func (tc *TypeCode) IsStruct() bool { return tc.Kind == KindStruct }
func (tc *TypeCode) IsUnion() bool  { return tc.Kind == KindUnion }
func (tc *TypeCode) IsEnum() bool   { return tc.Kind == KindEnum }
func (tc *TypeCode) IsAlias() bool  { return tc.Kind == KindAlias }

// DefaultCase returns the union's default branch, if any.
func (tc *TypeCode) DefaultCase() (UnionCase, bool) {
	for _, c := range tc.Cases {
		if c.Default {
			return c, true
		}
	}
	return UnionCase{}, false
}
