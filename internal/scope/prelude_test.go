package scope

import (
	"testing"

	"github.com/funvibe/elmscope/internal/elm"
)

func TestPreludeIsAlwaysPresent(t *testing.T) {
	ctx := NewModuleContext(elm.Name("Main"), testDeps())

	// Basics is a wildcard entry; its names come from the interface index.
	expectValue(t, ctx, "add", "", "Basics")
	expectType(t, ctx, "Int", "", "Basics")
	// Maybe(..) drags its constructors in through the Maybe interface.
	expectValue(t, ctx, "Just", "", "Maybe")
	expectType(t, ctx, "Maybe", "", "Maybe")
	// Entries with explicit items need no interface data at all.
	expectType(t, ctx, "List", "", "List")
	expectValue(t, ctx, "::", "", "List")
	expectType(t, ctx, "String", "", "String")
}

func TestPreludeAliases(t *testing.T) {
	ctx := NewModuleContext(elm.Name("Main"), testDeps())

	expectType(t, ctx, "Cmd", "", "Platform.Cmd")
	expectValue(t, ctx, "map", "Cmd", "Platform.Cmd")
}

func TestExplicitImportBeatsPrelude(t *testing.T) {
	ctx := NewModuleContext(elm.Name("Main"), testDeps())
	ctx.AddImport(elm.Import{
		Module:   elm.Name("Math.Extra"),
		Exposing: exposingOf(elm.Expose(elm.Value("add"))),
	})

	// Explicit imports are scanned before the prelude, so they take the
	// name even though Basics also exposes it.
	expectValue(t, ctx, "add", "", "Math.Extra")
}

func TestLocalScopeBeatsPrelude(t *testing.T) {
	ctx := NewModuleContext(elm.Name("Main"), testDeps())
	ctx.BindDeclaration(elm.ValueDecl{Name: "identity"})

	expectValue(t, ctx, "identity", "", "")

	ctx.EnterFrame()
	ctx.Bind(elm.ValueNamespace, "add")
	expectValue(t, ctx, "add", "", "")
	ctx.ExitFrame()
	expectValue(t, ctx, "add", "", "Basics")
}
