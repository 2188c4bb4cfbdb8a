// Package exports models the export surface of a module: which value and
// type names it makes visible to importers, and the indexes that aggregate
// those surfaces across dependencies and across an in-project package set.
package exports

import (
	"sort"

	"github.com/funvibe/elmscope/internal/elm"
)

// TypeExport records what an exported type reveals besides its name:
// the constructors exposed alongside it, in declaration order. An empty
// list means the type is opaque to importers.
type TypeExport struct {
	Ctors []string
}

// Table is the resolved export surface of one module, split by namespace.
// Exposed constructors appear both under their type's TypeExport and in the
// value namespace, since a constructor is used as a value at call sites.
type Table struct {
	values map[string]struct{}
	types  map[string]TypeExport
}

func NewTable() *Table {
	return &Table{
		values: make(map[string]struct{}),
		types:  make(map[string]TypeExport),
	}
}

// AddValue records an exposed function, constant, operator or constructor.
func (t *Table) AddValue(name string) {
	t.values[name] = struct{}{}
}

// AddType records an exposed type together with its exposed constructors.
// The constructors are also added to the value namespace.
func (t *Table) AddType(name string, ctors []string) {
	existing := t.types[name]
	t.types[name] = TypeExport{Ctors: unionOrdered(existing.Ctors, ctors)}
	for _, ctor := range ctors {
		t.AddValue(ctor)
	}
}

// Has reports whether the table exposes name in the given namespace.
func (t *Table) Has(ns elm.Namespace, name string) bool {
	if ns == elm.TypeNamespace {
		_, ok := t.types[name]
		return ok
	}
	_, ok := t.values[name]
	return ok
}

// TypeCtors returns the constructors exposed alongside an exported type,
// or nil when the type is absent or opaque.
func (t *Table) TypeCtors(name string) []string {
	return t.types[name].Ctors
}

// Union merges other into t. Values are set-union; for a type present on
// both sides the exposed constructor lists are unioned, which keeps the
// operation associative and commutative regardless of merge order.
func (t *Table) Union(other *Table) {
	if other == nil {
		return
	}
	for name := range other.values {
		t.values[name] = struct{}{}
	}
	for name, te := range other.types {
		t.AddType(name, te.Ctors)
	}
}

// unionOrdered appends the elements of extra not already present in base,
// preserving first-seen order so repeated unions stay deterministic.
func unionOrdered(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[s] = struct{}{}
	}
	out := base
	for _, s := range extra {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// TableData is the serializable form of a Table, used by the interface
// file loaders and the sqlite cache.
type TableData struct {
	Values []string   `json:"values,omitempty" yaml:"values,omitempty"`
	Types  []TypeData `json:"types,omitempty" yaml:"types,omitempty"`
}

type TypeData struct {
	Name  string   `json:"name" yaml:"name"`
	Ctors []string `json:"ctors,omitempty" yaml:"ctors,omitempty"`
}

// Data snapshots the table in sorted order.
func (t *Table) Data() TableData {
	var d TableData
	for name := range t.values {
		d.Values = append(d.Values, name)
	}
	sort.Strings(d.Values)
	for name, te := range t.types {
		d.Types = append(d.Types, TypeData{Name: name, Ctors: te.Ctors})
	}
	sort.Slice(d.Types, func(i, j int) bool { return d.Types[i].Name < d.Types[j].Name })
	return d
}

// FromData rebuilds a Table from its serialized form.
func FromData(d TableData) *Table {
	t := NewTable()
	for _, name := range d.Values {
		t.AddValue(name)
	}
	for _, td := range d.Types {
		t.AddType(td.Name, td.Ctors)
	}
	return t
}
