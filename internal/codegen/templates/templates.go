// Package templates embeds the default template group of every target
// language. Each group provides main, interface, struct_type, union_type and
// enum_type.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed java/*.tmpl go/*.tmpl
var files embed.FS

// FS returns the default templates of lang.
func FS(lang string) (fs.FS, error) {
	sub, err := fs.Sub(files, lang)
	if err != nil {
		return nil, fmt.Errorf("default templates for %s: %w", lang, err)
	}
	if _, err := fs.Stat(sub, "main.tmpl"); err != nil {
		return nil, fmt.Errorf("no default templates for language %q", lang)
	}
	return sub, nil
}
