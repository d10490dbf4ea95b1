package template

import (
	"fmt"
	"maps"
	"strings"
)

// Template is one instance of a group template together with its bound
// attributes. Instances are cheap and meant to be discarded after rendering.
type Template struct {
	name   string
	group  *Group
	attrs  map[string]any
	repeat map[string]bool
}

// Name returns the template name the instance was resolved from.
func (t *Template) Name() string { return t.name }

// SetAttribute binds a single-valued attribute, replacing any previous value.
func (t *Template) SetAttribute(key string, value any) *Template {
	t.attrs[key] = value
	delete(t.repeat, key)
	return t
}

// AddAttribute appends value to the repeated attribute key. Values keep their
// insertion order; templates see the attribute as a []any.
func (t *Template) AddAttribute(key string, value any) *Template {
	if t.repeat == nil {
		t.repeat = make(map[string]bool)
	}
	if !t.repeat[key] {
		t.attrs[key] = []any{}
		t.repeat[key] = true
	}
	t.attrs[key] = append(t.attrs[key].([]any), value)
	return t
}

// Attribute returns the bound value of key.
func (t *Template) Attribute(key string) (any, bool) {
	v, ok := t.attrs[key]
	return v, ok
}

// Attributes returns a copy of all bound attributes.
func (t *Template) Attributes() map[string]any { return maps.Clone(t.attrs) }

// Render evaluates the template with the bound attributes.
func (t *Template) Render() (string, error) {
	var b strings.Builder
	if err := t.group.set.ExecuteTemplate(&b, t.name, t.attrs); err != nil {
		return "", fmt.Errorf("render template %s/%s: %w", t.group.name, t.name, err)
	}
	return b.String(), nil
}
