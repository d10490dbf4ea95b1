package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToPascalCase joins the words of s, upper-casing the first letter of each.
// The rest of each word is kept as written so IDL names like "sensorID"
// survive ("sensor_id" -> "SensorId", "sensorID" -> "SensorID").
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		result.WriteRune(unicode.ToUpper(r))
		result.WriteString(word[size:])
	}

	return result.String()
}

func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return ""
	}
	r, size := utf8.DecodeRuneInString(pascal)
	return string(unicode.ToLower(r)) + pascal[size:]
}

func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			// "XMLParser" -> "xml_parser", not "x_m_l_parser"
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

			if prevIsLower || nextIsLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}

// LastSegment returns the part of a dotted or scoped path after the final
// separator: "com.acme.a" -> "a", "a::b::C" -> "C".
func LastSegment(path string) string {
	if i := strings.LastIndex(path, "::"); i >= 0 {
		path = path[i+2:]
	}
	if i := strings.LastIndex(path, "."); i >= 0 {
		path = path[i+1:]
	}
	return path
}

// Indent prefixes every non-empty line of s with n spaces.
func Indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
