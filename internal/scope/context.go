package scope

import (
	"github.com/funvibe/elmscope/internal/elm"
	"github.com/funvibe/elmscope/internal/exports"
)

// ModuleContext is the live resolution state for one module: its scope
// stack, its import list, and borrowed read-only views of the dependency
// and project interface indexes. It is created when the driver starts
// traversing a module and discarded when the traversal ends.
type ModuleContext struct {
	module  elm.ModuleName
	frames  []*frame
	imports []elm.Import // explicit imports, file order
	deps    exports.Index
	project exports.Index
}

// NewModuleContext creates a context for single-module analysis: sibling
// project modules are invisible, only dependency interfaces and the
// implicit prelude are in play. deps may be nil.
func NewModuleContext(module elm.ModuleName, deps exports.Index) *ModuleContext {
	return &ModuleContext{
		module: module,
		frames: []*frame{newFrame()},
		deps:   deps,
	}
}

// NewProjectContext creates a context for project-wide analysis. project
// must be a frozen project interface index covering every module of the
// project; handing over a partially built index violates the two-phase
// contract and yields incomplete resolutions.
func NewProjectContext(module elm.ModuleName, deps, project exports.Index) *ModuleContext {
	c := NewModuleContext(module, deps)
	c.project = project
	return c
}

// Module returns the path of the module under analysis.
func (c *ModuleContext) Module() elm.ModuleName {
	return c.module
}

// AddImport appends one import declaration. Imports must be added in file
// order; duplicates and alias collisions are kept verbatim, since
// disambiguation is a query-time concern, not a build-time one.
func (c *ModuleContext) AddImport(imp elm.Import) {
	c.imports = append(c.imports, imp)
}

// BindDeclaration enters a top-level declaration into the module root
// frame: value and port names in the value namespace, type and alias
// names in the type namespace, constructors as values. The driver binds
// all declarations before walking any body, since Elm's top level is
// order-independent.
func (c *ModuleContext) BindDeclaration(decl elm.Declaration) {
	root := c.frames[0]
	switch d := decl.(type) {
	case elm.ValueDecl:
		root.bind(elm.ValueNamespace, d.Name)
	case elm.PortDecl:
		root.bind(elm.ValueNamespace, d.Name)
	case elm.UnionDecl:
		root.bind(elm.TypeNamespace, d.Name)
		for _, ctor := range d.Ctors {
			root.bind(elm.ValueNamespace, ctor)
		}
	case elm.AliasDecl:
		root.bind(elm.TypeNamespace, d.Name)
	}
}

// lookupTable finds the export table for a module path, dependency
// interfaces first, then the project index when one is attached.
func (c *ModuleContext) lookupTable(module elm.ModuleName) (*exports.Table, bool) {
	if c.deps != nil {
		if t, ok := c.deps.Lookup(module); ok {
			return t, true
		}
	}
	if c.project != nil {
		if t, ok := c.project.Lookup(module); ok {
			return t, true
		}
	}
	return nil, false
}
