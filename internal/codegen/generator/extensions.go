package generator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Hook is an extension point. Its value is also the name of the base
// template the hook extends, except for HookMain which extends "main".
type Hook string

const (
	HookInterface Hook = "interface"
	HookMain      Hook = "main"
	HookStruct    Hook = "struct_type"
	HookUnion     Hook = "union_type"
	HookEnum      Hook = "enum_type"
)

var hooks = []Hook{HookInterface, HookMain, HookStruct, HookUnion, HookEnum}

// Extensions maps hooks to the name of the extension template rendered into
// the base template's "extension" attribute. Absent hooks have no extension.
// A render pass only reads it.
type Extensions map[Hook]string

// ParseExtensions converts a configuration map (hook name to template name)
// into Extensions, rejecting unknown hooks and empty template names.
func ParseExtensions(m map[string]string) (Extensions, error) {
	ext := make(Extensions, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		h := Hook(k)
		if !slices.Contains(hooks, h) {
			return nil, fmt.Errorf("unknown extension hook %q (supported: %s)", k, strings.Join(HookNames(), ", "))
		}
		if m[k] == "" {
			return nil, fmt.Errorf("extension hook %q has no template name", k)
		}
		ext[h] = m[k]
	}
	return ext, nil
}

// HookNames lists the recognized hook keys.
func HookNames() []string {
	out := make([]string, len(hooks))
	for i, h := range hooks {
		out[i] = string(h)
	}
	return out
}

// Lookup returns the extension template name for h.
func (e Extensions) Lookup(h Hook) (string, bool) {
	name, ok := e[h]
	return name, ok
}
