package scope

import "github.com/funvibe/elmscope/internal/elm"

// ResolveValue answers which module defines the value-namespace identifier
// `name`, written with the given qualifier (empty for a bare occurrence).
//
// The result is the defining module's path; the empty path means "defined
// locally" — deliberately also the answer for a name that is unknown
// everywhere, since without a full compile the two cases cannot be told
// apart. An unrecognized qualifier comes back unchanged, so unresolved
// qualified and unresolved bare occurrences stay distinguishable.
func (c *ModuleContext) ResolveValue(name string, qualifier elm.ModuleName) elm.ModuleName {
	return c.resolve(elm.ValueNamespace, name, qualifier)
}

// ResolveType is ResolveValue for the type namespace.
func (c *ModuleContext) ResolveType(name string, qualifier elm.ModuleName) elm.ModuleName {
	return c.resolve(elm.TypeNamespace, name, qualifier)
}

func (c *ModuleContext) resolve(ns elm.Namespace, name string, qualifier elm.ModuleName) elm.ModuleName {
	if len(qualifier) > 0 {
		return c.resolveQualified(ns, name, qualifier)
	}
	return c.resolveBare(ns, name)
}

func (c *ModuleContext) resolveBare(ns elm.Namespace, name string) elm.ModuleName {
	// Local scope wins over any import, prelude included.
	if c.IsLocallyBound(ns, name) {
		return nil
	}
	// First matching import in file order is authoritative; the prelude
	// sits behind every explicit import.
	for _, imp := range c.imports {
		if c.importExposes(imp, ns, name) {
			return imp.Module
		}
	}
	for _, imp := range prelude {
		if c.importExposes(imp, ns, name) {
			return imp.Module
		}
	}
	return nil
}

// importExposes reports whether imp makes name visible unqualified in the
// given namespace.
func (c *ModuleContext) importExposes(imp elm.Import, ns elm.Namespace, name string) bool {
	if imp.Exposing == nil {
		return false
	}
	if imp.Exposing.All {
		// A wildcard exposes exactly the target's own export surface:
		// names the target declares but does not export never leak
		// through. With no table in sight we expose nothing.
		table, ok := c.lookupTable(imp.Module)
		return ok && table.Has(ns, name)
	}
	for _, item := range imp.Exposing.Items {
		if c.itemExposes(imp, item, ns, name) {
			return true
		}
	}
	return false
}

func (c *ModuleContext) itemExposes(imp elm.Import, item elm.ExposedItem, ns elm.Namespace, name string) bool {
	if ns == elm.TypeNamespace {
		return item.IsType && item.Name == name
	}
	if !item.IsType {
		return item.Name == name
	}
	// A type item can pull constructors into the value namespace.
	if item.OpenCtors {
		table, ok := c.lookupTable(imp.Module)
		if !ok {
			return false
		}
		for _, ctor := range table.TypeCtors(item.Name) {
			if ctor == name {
				return true
			}
		}
		return false
	}
	for _, ctor := range item.Ctors {
		if ctor == name {
			return true
		}
	}
	return false
}

func (c *ModuleContext) resolveQualified(ns elm.Namespace, name string, qualifier elm.ModuleName) elm.ModuleName {
	var candidates []elm.Import
	for _, imp := range c.allImports() {
		if importMatchesQualifier(imp, qualifier) {
			candidates = append(candidates, imp)
		}
	}
	switch len(candidates) {
	case 0:
		// Unknown qualifier: echo it back as an opaque, unverifiable path.
		return qualifier
	case 1:
		// Qualified access ignores the exposing spec entirely.
		return candidates[0].Module
	}
	// Several imports answer to the same qualifier. Disambiguate by
	// content: keep the candidates whose export surface actually carries
	// the name. Only a unique survivor is a trustworthy answer.
	var survivors []elm.Import
	for _, imp := range candidates {
		if table, ok := c.lookupTable(imp.Module); ok && table.Has(ns, name) {
			survivors = append(survivors, imp)
		}
	}
	if len(survivors) == 1 {
		return survivors[0].Module
	}
	return qualifier
}

// importMatchesQualifier reports whether imp answers to the qualifier: by
// alias when the import has one, otherwise by its full module path.
func importMatchesQualifier(imp elm.Import, qualifier elm.ModuleName) bool {
	if imp.Alias != "" {
		return len(qualifier) == 1 && qualifier[0] == imp.Alias
	}
	return imp.Module.Equal(qualifier)
}

// allImports iterates explicit imports first, then the prelude.
func (c *ModuleContext) allImports() []elm.Import {
	if len(c.imports) == 0 {
		return prelude
	}
	all := make([]elm.Import, 0, len(c.imports)+len(prelude))
	all = append(all, c.imports...)
	all = append(all, prelude...)
	return all
}
