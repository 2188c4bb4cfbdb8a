// Package project wires the per-module engine into a project-wide,
// two-phase pass. Phase 1 turns every module into a Fragment (its path and
// export table) and folds the fragments into an Aggregate; the fold is
// associative and commutative, so the driver may process modules in any
// order, or in parallel, and still arrive at the same aggregate. Phase 2
// freezes the aggregate into a read-only interface index and re-creates
// each module's context with that index attached.
//
// The Aggregate itself cannot answer lookups — only the index returned by
// Freeze can — which makes "query before every module's export table is
// in" a type error rather than a runtime hazard.
package project

import (
	"github.com/funvibe/elmscope/internal/elm"
	"github.com/funvibe/elmscope/internal/exports"
	"github.com/funvibe/elmscope/internal/scope"
)

// Fragment is one module's contribution to the project interface index,
// produced when phase 1 finishes traversing that module.
type Fragment struct {
	Module  elm.ModuleName
	Exports *exports.Table
}

// NewFragment computes a module's fragment from its header and top-level
// declarations.
func NewFragment(header elm.ModuleHeader, decls []elm.Declaration) Fragment {
	return Fragment{
		Module:  header.Name,
		Exports: exports.Build(header, decls),
	}
}

// Aggregate accumulates fragments during phase 1.
type Aggregate struct {
	index exports.Index
}

func NewAggregate() *Aggregate {
	return &Aggregate{index: exports.NewIndex()}
}

// Add folds one module's fragment into the aggregate.
func (a *Aggregate) Add(fragment Fragment) {
	a.index.Add(fragment.Module, fragment.Exports)
}

// Fold merges another aggregate into this one. Duplicate module paths
// union their tables, so Fold(x, y) and Fold(y, x) agree.
func (a *Aggregate) Fold(other *Aggregate) {
	a.index.Merge(other.index)
}

// Freeze snapshots the aggregate into the read-only project interface
// index phase 2 consumes. The snapshot is a deep copy: folding more
// fragments afterwards never changes an index already handed out.
func (a *Aggregate) Freeze() exports.Index {
	return a.index.Clone()
}

// ContextFor starts phase 2 for one module: a resolution context that
// sees the dependency interfaces and the frozen project index.
func ContextFor(module elm.ModuleName, deps, frozen exports.Index) *scope.ModuleContext {
	return scope.NewProjectContext(module, deps, frozen)
}
