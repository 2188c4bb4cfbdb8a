package exports

import "github.com/funvibe/elmscope/internal/elm"

// Build derives a module's export table from its header and its own
// top-level declarations.
//
// A wildcard header exposes every declaration and every constructor. An
// explicit header exposes exactly the listed names; a listed type with a
// `(..)` spec drags along all of its declared constructors, a listed type
// without a constructor spec stays opaque. Listed names with no matching
// declaration are silently skipped — this is a best-effort surface
// computation, not a validator; the compiler owns that diagnostic.
func Build(header elm.ModuleHeader, decls []elm.Declaration) *Table {
	table := NewTable()
	if header.Exposing.All {
		for _, decl := range decls {
			switch d := decl.(type) {
			case elm.ValueDecl:
				table.AddValue(d.Name)
			case elm.PortDecl:
				table.AddValue(d.Name)
			case elm.UnionDecl:
				table.AddType(d.Name, d.Ctors)
			case elm.AliasDecl:
				table.AddType(d.Name, nil)
			}
		}
		return table
	}

	for _, item := range header.Exposing.Items {
		if !item.IsType {
			if declaresValue(decls, item.Name) {
				table.AddValue(item.Name)
			}
			continue
		}
		decl, ok := findType(decls, item.Name)
		if !ok {
			continue
		}
		union, isUnion := decl.(elm.UnionDecl)
		if !isUnion {
			table.AddType(item.Name, nil)
			continue
		}
		switch {
		case item.OpenCtors:
			table.AddType(union.Name, union.Ctors)
		case len(item.Ctors) > 0:
			table.AddType(union.Name, intersectOrdered(union.Ctors, item.Ctors))
		default:
			table.AddType(union.Name, nil)
		}
	}
	return table
}

func declaresValue(decls []elm.Declaration, name string) bool {
	for _, decl := range decls {
		switch d := decl.(type) {
		case elm.ValueDecl:
			if d.Name == name {
				return true
			}
		case elm.PortDecl:
			if d.Name == name {
				return true
			}
		}
	}
	return false
}

func findType(decls []elm.Declaration, name string) (elm.Declaration, bool) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case elm.UnionDecl:
			if d.Name == name {
				return d, true
			}
		case elm.AliasDecl:
			if d.Name == name {
				return d, true
			}
		}
	}
	return nil, false
}

// intersectOrdered keeps the elements of declared that appear in listed,
// in declaration order. Listed constructors that were never declared drop
// out, consistent with the best-effort contract above.
func intersectOrdered(declared, listed []string) []string {
	want := make(map[string]struct{}, len(listed))
	for _, s := range listed {
		want[s] = struct{}{}
	}
	var out []string
	for _, s := range declared {
		if _, ok := want[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
