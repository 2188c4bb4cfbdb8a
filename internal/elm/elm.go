// Package elm holds the host-language surface this engine consumes: module
// names, exposing specs, import declarations and top-level declarations.
// The AST itself is owned by the caller; these types are the slice of it the
// resolution engine needs to see.
package elm

import "strings"

// Namespace selects one of Elm's two disjoint identifier domains.
// Values (functions, constants, pattern bindings, constructors used as
// values) never collide with types (type and type-alias names), so every
// lookup is namespace-scoped.
type Namespace int

const (
	ValueNamespace Namespace = iota
	TypeNamespace
)

func (n Namespace) String() string {
	switch n {
	case ValueNamespace:
		return "value"
	case TypeNamespace:
		return "type"
	default:
		return "unknown"
	}
}

// ModuleName is a dotted Elm module path split into segments,
// e.g. ["Platform", "Cmd"] for Platform.Cmd.
// The empty ModuleName is the sentinel for "defined in the current module".
type ModuleName []string

// Name builds a ModuleName from a dotted string. The empty string yields
// the local sentinel.
func Name(dotted string) ModuleName {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}

func (m ModuleName) String() string {
	return strings.Join(m, ".")
}

// IsLocal reports whether m is the "current module" sentinel.
func (m ModuleName) IsLocal() bool {
	return len(m) == 0
}

// Equal compares two module names segment by segment.
func (m ModuleName) Equal(other ModuleName) bool {
	if len(m) != len(other) {
		return false
	}
	for i, seg := range m {
		if other[i] != seg {
			return false
		}
	}
	return true
}
