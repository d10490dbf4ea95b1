package generator

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/Alia5/idlgen/internal/codegen/common"
)

// Language describes one target language: the extension of emitted files,
// the helper functions its templates use and an optional formatter applied
// to every artifact before it is written.
type Language struct {
	Name      string
	Extension string
	Funcs     template.FuncMap
	Format    func(path string, src []byte) ([]byte, error)
}

var languages = map[string]*Language{
	"java": {
		Name:      "java",
		Extension: ".java",
		Funcs: template.FuncMap{
			"javaType": common.JavaType,
		},
	},
	"go": {
		Name:      "go",
		Extension: ".go",
		Funcs: template.FuncMap{
			"goType":    common.GoType,
			"goPackage": goPackageName,
		},
		Format: formatGo,
	},
}

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "java"

// LookupLanguage returns the named target language.
func LookupLanguage(name string) (*Language, error) {
	lang, ok := languages[name]
	if !ok {
		return nil, fmt.Errorf("unsupported language '%s' (supported: %v)", name, Languages())
	}
	return lang, nil
}

// Languages lists the supported target languages.
func Languages() []string {
	return slices.Sorted(maps.Keys(languages))
}

func (l *Language) funcs() template.FuncMap {
	fm := template.FuncMap{
		"pascal":   common.ToPascalCase,
		"camel":    common.ToCamelCase,
		"snake":    common.ToSnakeCase,
		"sanitize": common.SanitizeLeadingDigit,
		"indent":   common.Indent,
		"last":     common.LastSegment,
		"join":     strings.Join,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"scoped":   scopedIn,
		"version":  version,
	}
	maps.Copy(fm, l.Funcs)
	return fm
}

func version() string {
	v, err := common.GetVersion()
	if err != nil {
		return "dev"
	}
	return v
}

// scopedIn returns the scoped name of name declared inside parent, which is
// an idl.Definition or nil at top level.
func scopedIn(parent any, name string) string {
	if p, ok := parent.(interface{ ScopedName() string }); ok {
		return p.ScopedName() + "::" + name
	}
	return name
}

// goPackageName turns a dotted package path into a Go package name.
func goPackageName(pkg string) string {
	name := strings.ToLower(common.LastSegment(pkg))
	name = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, name)
	if name == "" {
		return "idl"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}

// formatGo gofmts a rendered artifact. On failure the unformatted text is
// written next to path with an ".error" suffix.
func formatGo(path string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(path, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		debugPath := path + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, src, 0o644)
		return nil, fmt.Errorf("format: %w (unformatted written to %s)", err, debugPath)
	}
	return formatted, nil
}
