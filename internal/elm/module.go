package elm

// ModuleHeader is the `module X exposing (...)` line of a source file.
type ModuleHeader struct {
	Name     ModuleName
	Exposing Exposing
}

// Import is one `import X [as Y] [exposing (...)]` declaration.
// Alias is empty when no `as` clause is present; an alias-free import is
// addressable only by its full dotted path, never by a prefix of it.
// Exposing is nil when the import has no exposing clause at all.
type Import struct {
	Module   ModuleName
	Alias    string
	Exposing *Exposing
}

// Declaration is a top-level declaration of the module under analysis.
// Only the names a declaration introduces matter here; bodies, type
// annotations and positions stay with the caller's AST.
type Declaration interface {
	declNode()
}

// ValueDecl is a top-level function or constant declaration.
type ValueDecl struct {
	Name string
}

// PortDecl is a `port foo : ...` declaration; it binds a value name.
type PortDecl struct {
	Name string
}

// UnionDecl is a `type Foo = A | B` declaration with its constructor
// names in declaration order.
type UnionDecl struct {
	Name  string
	Ctors []string
}

// AliasDecl is a `type alias Foo = ...` declaration. Record aliases also
// bind a value-level constructor in Elm; that is the caller's concern when
// binding module scope, not part of the declared name set used here.
type AliasDecl struct {
	Name string
}

func (ValueDecl) declNode() {}
func (PortDecl) declNode()  {}
func (UnionDecl) declNode() {}
func (AliasDecl) declNode() {}
