package deps

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/elmscope/internal/elm"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "interfaces.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	idx, err := LoadDocs(strings.NewReader(htmlDocs))
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Put("elm/html", "1.0.0", idx); err != nil {
		t.Fatalf("Put: %v", err)
	}

	loaded, ok, err := cache.Get("elm/html", "1.0.0")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("cache miss after Put")
	}
	expectIndexed(t, loaded, "Html", elm.ValueNamespace, "button")
	expectIndexed(t, loaded, "Maybe", elm.ValueNamespace, "Just")

	maybe, _ := loaded.Lookup(elm.Name("Maybe"))
	if got := maybe.TypeCtors("Maybe"); len(got) != 2 {
		t.Errorf("constructor list lost through the cache: %v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	cache := openTestCache(t)

	if _, ok, err := cache.Get("elm/html", "1.0.0"); err != nil || ok {
		t.Errorf("Get on empty cache = (ok=%v, err=%v), want miss", ok, err)
	}

	idx, err := LoadDocs(strings.NewReader(htmlDocs))
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Put("elm/html", "1.0.0", idx); err != nil {
		t.Fatal(err)
	}
	// A different version is still a miss.
	if _, ok, _ := cache.Get("elm/html", "2.0.0"); ok {
		t.Error("version mismatch produced a cache hit")
	}
}

func TestCachePutReplaces(t *testing.T) {
	cache := openTestCache(t)

	first, err := LoadInterfaces(strings.NewReader("modules:\n  - name: A\n    values: [old]\n"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := LoadInterfaces(strings.NewReader("modules:\n  - name: A\n    values: [new]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Put("pkg", "1", first); err != nil {
		t.Fatal(err)
	}
	if err := cache.Put("pkg", "1", second); err != nil {
		t.Fatal(err)
	}

	loaded, ok, err := cache.Get("pkg", "1")
	if err != nil || !ok {
		t.Fatalf("Get = (ok=%v, err=%v)", ok, err)
	}
	table, _ := loaded.Lookup(elm.Name("A"))
	if table.Has(elm.ValueNamespace, "old") {
		t.Error("replaced entry still visible")
	}
	if !table.Has(elm.ValueNamespace, "new") {
		t.Error("replacement entry missing")
	}
}
