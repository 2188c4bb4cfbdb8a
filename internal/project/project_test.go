package project

import (
	"reflect"
	"testing"

	"github.com/funvibe/elmscope/internal/elm"
	"github.com/funvibe/elmscope/internal/exports"
	"github.com/funvibe/elmscope/internal/scope"
)

func fragmentFixtures() []Fragment {
	helper := NewFragment(
		elm.ModuleHeader{
			Name:     elm.Name("Page.Helper"),
			Exposing: elm.Expose(elm.Value("visible"), elm.OpenType("Status")),
		},
		[]elm.Declaration{
			elm.ValueDecl{Name: "visible"},
			elm.ValueDecl{Name: "secret"},
			elm.UnionDecl{Name: "Status", Ctors: []string{"Open", "Closed"}},
		},
	)
	util := NewFragment(
		elm.ModuleHeader{
			Name:     elm.Name("Page.Util"),
			Exposing: elm.ExposeAll(),
		},
		[]elm.Declaration{
			elm.ValueDecl{Name: "format"},
			elm.AliasDecl{Name: "Config"},
		},
	)
	return []Fragment{helper, util}
}

func indexSnapshot(idx exports.Index) map[string]exports.TableData {
	snap := make(map[string]exports.TableData)
	for _, name := range idx.Modules() {
		table, _ := idx.Lookup(elm.Name(name))
		snap[name] = table.Data()
	}
	return snap
}

func TestFoldOrderIndependence(t *testing.T) {
	fragments := fragmentFixtures()

	forward := NewAggregate()
	for _, f := range fragments {
		forward.Add(f)
	}
	backward := NewAggregate()
	for i := len(fragments) - 1; i >= 0; i-- {
		backward.Add(fragments[i])
	}

	// Fold an aggregate into an aggregate both ways round as well.
	left := NewAggregate()
	left.Add(fragments[0])
	right := NewAggregate()
	right.Add(fragments[1])
	folded := NewAggregate()
	folded.Fold(right)
	folded.Fold(left)

	want := indexSnapshot(forward.Freeze())
	for name, agg := range map[string]*Aggregate{"backward": backward, "folded": folded} {
		if got := indexSnapshot(agg.Freeze()); !reflect.DeepEqual(got, want) {
			t.Errorf("%s fold produced a different index:\ngot  %v\nwant %v", name, got, want)
		}
	}
}

func TestFreezeIsolatesLaterFolds(t *testing.T) {
	fragments := fragmentFixtures()
	agg := NewAggregate()
	agg.Add(fragments[0])

	frozen := agg.Freeze()
	agg.Add(fragments[1])

	if _, ok := frozen.Lookup(elm.Name("Page.Util")); ok {
		t.Fatal("fragment added after Freeze leaked into the frozen index")
	}
	if _, ok := agg.Freeze().Lookup(elm.Name("Page.Util")); !ok {
		t.Fatal("aggregate lost a fragment added after an earlier Freeze")
	}
}

func TestTwoPhaseSiblingResolution(t *testing.T) {
	// Phase 1 across the whole project, then phase 2 for a module that
	// wildcard-imports a sibling.
	agg := NewAggregate()
	for _, f := range fragmentFixtures() {
		agg.Add(f)
	}
	frozen := agg.Freeze()

	ctx := ContextFor(elm.Name("Page.Main"), nil, frozen)
	ctx.AddImport(elm.Import{Module: elm.Name("Page.Helper"), Exposing: wildcard()})

	if got := ctx.ResolveValue("visible", nil); got.String() != "Page.Helper" {
		t.Errorf("visible resolved to %q, want Page.Helper", got.String())
	}
	if got := ctx.ResolveValue("Open", nil); got.String() != "Page.Helper" {
		t.Errorf("constructor Open resolved to %q, want Page.Helper", got.String())
	}
	// Declared but not exported: invisible through the wildcard.
	if got := ctx.ResolveValue("secret", nil); !got.IsLocal() {
		t.Errorf("unexported secret resolved to %q, want empty", got.String())
	}
}

func TestSingleModuleModeSeesNoSiblings(t *testing.T) {
	// The identical import that works in project mode stays unresolved
	// when no project index is attached.
	ctx := scope.NewModuleContext(elm.Name("Page.Main"), nil)
	ctx.AddImport(elm.Import{Module: elm.Name("Page.Helper"), Exposing: wildcard()})

	if got := ctx.ResolveValue("visible", nil); !got.IsLocal() {
		t.Errorf("single-module mode resolved visible to %q, want empty", got.String())
	}
	// Qualified access needs no export surface and keeps working.
	if got := ctx.ResolveValue("visible", elm.Name("Page.Helper")); got.String() != "Page.Helper" {
		t.Errorf("qualified access resolved to %q, want Page.Helper", got.String())
	}
}

func wildcard() *elm.Exposing {
	e := elm.ExposeAll()
	return &e
}
