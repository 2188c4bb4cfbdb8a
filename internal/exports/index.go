package exports

import (
	"sort"

	"github.com/funvibe/elmscope/internal/elm"
)

// Index maps a module path to that module's export table. Both the
// dependency interface index and the frozen project interface index are
// plain Indexes; the difference is only where their tables come from.
type Index map[string]*Table

func NewIndex() Index {
	return make(Index)
}

// Lookup finds the export table for a module path.
func (idx Index) Lookup(module elm.ModuleName) (*Table, bool) {
	t, ok := idx[module.String()]
	return t, ok
}

// Add records a module's export table. When the path is already present
// the two tables are unioned, so Add is insensitive to insertion order —
// a requirement for the project-wide fold, where modules arrive in
// whatever order the driver processed them.
func (idx Index) Add(module elm.ModuleName, table *Table) {
	key := module.String()
	if existing, ok := idx[key]; ok {
		existing.Union(table)
		return
	}
	merged := NewTable()
	merged.Union(table)
	idx[key] = merged
}

// Merge unions every entry of other into idx.
func (idx Index) Merge(other Index) {
	for key, table := range other {
		idx.Add(elm.Name(key), table)
	}
}

// Clone deep-copies the index. Freezing a project aggregate hands out a
// clone so later folds cannot mutate tables a resolver already sees.
func (idx Index) Clone() Index {
	out := NewIndex()
	out.Merge(idx)
	return out
}

// Modules lists the indexed module paths in sorted order.
func (idx Index) Modules() []string {
	names := make([]string, 0, len(idx))
	for key := range idx {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}
