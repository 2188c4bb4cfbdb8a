package elm

// Exposing is the `exposing (...)` clause of a module header or an import.
// Either All is set (the `(..)` wildcard) or Items lists the exposed names.
type Exposing struct {
	All   bool
	Items []ExposedItem
}

// ExposedItem is one entry of an explicit exposing list: a plain value name,
// a type name, or a type name together with some or all of its constructors.
type ExposedItem struct {
	Name      string
	IsType    bool
	OpenCtors bool     // Foo(..): every constructor of Foo
	Ctors     []string // Foo(A, B): an explicit constructor set
}

// ExposeAll returns the `(..)` wildcard spec.
func ExposeAll() Exposing {
	return Exposing{All: true}
}

// Expose builds an explicit spec from pre-built items.
func Expose(items ...ExposedItem) Exposing {
	return Exposing{Items: items}
}

// Value exposes a function, constant or operator by name.
func Value(name string) ExposedItem {
	return ExposedItem{Name: name}
}

// Type exposes a type name without its constructors.
func Type(name string) ExposedItem {
	return ExposedItem{Name: name, IsType: true}
}

// OpenType exposes a type name together with all of its constructors,
// the `Foo(..)` form.
func OpenType(name string) ExposedItem {
	return ExposedItem{Name: name, IsType: true, OpenCtors: true}
}

// ClosedType exposes a type name with an explicit constructor set.
func ClosedType(name string, ctors ...string) ExposedItem {
	return ExposedItem{Name: name, IsType: true, Ctors: ctors}
}
