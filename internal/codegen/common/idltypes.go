package common

import "strings"

// NormalizeIDLType collapses whitespace in an IDL type spelling and strips
// one level of sequence<...>, reporting whether it was a sequence.
// Examples: "unsigned   long" -> ("unsigned long", false),
// "sequence<short>" -> ("short", true), "sequence<short, 8>" -> ("short", true).
func NormalizeIDLType(idlType string) (base string, isSequence bool) {
	base = strings.Join(strings.Fields(idlType), " ")
	if strings.HasPrefix(base, "sequence<") && strings.HasSuffix(base, ">") {
		base = strings.TrimSuffix(strings.TrimPrefix(base, "sequence<"), ">")
		if i := strings.LastIndex(base, ","); i >= 0 && !strings.Contains(base[i:], ">") {
			base = base[:i]
		}
		base = strings.TrimSpace(base)
		isSequence = true
	}
	return
}

var javaPrimitives = map[string]string{
	"short":              "short",
	"unsigned short":     "short",
	"long":               "int",
	"unsigned long":      "int",
	"long long":          "long",
	"unsigned long long": "long",
	"float":              "float",
	"double":             "double",
	"long double":        "double",
	"boolean":            "boolean",
	"char":               "char",
	"wchar":              "char",
	"octet":              "byte",
	"int8":               "byte",
	"uint8":              "byte",
	"int16":              "short",
	"uint16":             "short",
	"int32":              "int",
	"uint32":             "int",
	"int64":              "long",
	"uint64":             "long",
	"string":             "String",
	"wstring":            "String",
	"void":               "void",
}

var javaBoxed = map[string]string{
	"short":   "Short",
	"int":     "Integer",
	"long":    "Long",
	"float":   "Float",
	"double":  "Double",
	"boolean": "Boolean",
	"char":    "Character",
	"byte":    "Byte",
}

// JavaType maps an IDL type to its Java spelling. Scoped names become
// dotted, fully-qualified class names.
func JavaType(idlType string) string {
	base, isSeq := NormalizeIDLType(idlType)
	if base == "" {
		return "void"
	}
	if isSeq {
		t := JavaType(base)
		if boxed, ok := javaBoxed[t]; ok {
			t = boxed
		}
		return "java.util.List<" + t + ">"
	}
	if t, ok := javaPrimitives[base]; ok {
		return t
	}
	return strings.ReplaceAll(strings.TrimPrefix(base, "::"), "::", ".")
}

var goPrimitives = map[string]string{
	"short":              "int16",
	"unsigned short":     "uint16",
	"long":               "int32",
	"unsigned long":      "uint32",
	"long long":          "int64",
	"unsigned long long": "uint64",
	"float":              "float32",
	"double":             "float64",
	"long double":        "float64",
	"boolean":            "bool",
	"char":               "byte",
	"wchar":              "rune",
	"octet":              "byte",
	"int8":               "int8",
	"uint8":              "uint8",
	"int16":              "int16",
	"uint16":             "uint16",
	"int32":              "int32",
	"uint32":             "uint32",
	"int64":              "int64",
	"uint64":             "uint64",
	"string":             "string",
	"wstring":            "string",
}

// GoType maps an IDL type to its Go spelling. Scoped names resolve to their
// final component; every module is emitted as its own package, so callers
// referencing types across modules must provide an extension template that
// adds the import.
func GoType(idlType string) string {
	base, isSeq := NormalizeIDLType(idlType)
	if isSeq {
		return "[]" + GoType(base)
	}
	if t, ok := goPrimitives[base]; ok {
		return t
	}
	return ToPascalCase(LastSegment(base))
}
