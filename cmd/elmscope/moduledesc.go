package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/elmscope/internal/elm"
)

// ModuleDesc is the YAML description of one module the harness feeds to
// the resolver: the header, the imports, the declared top-level names and
// the identifier usages to resolve. It deliberately describes a module
// rather than carrying Elm source; parsing Elm is not this tool's job.
type ModuleDesc struct {
	Module       string       `yaml:"module"`
	Exposing     []string     `yaml:"exposing"` // ["..."] for a wildcard header
	Imports      []ImportDesc `yaml:"imports"`
	Declarations DeclsDesc    `yaml:"declarations"`
	Usages       []UsageDesc  `yaml:"usages"`
}

type ImportDesc struct {
	Module   string   `yaml:"module"`
	Alias    string   `yaml:"alias"`
	Exposing []string `yaml:"exposing"`
}

type DeclsDesc struct {
	Values  []string    `yaml:"values"`
	Ports   []string    `yaml:"ports"`
	Aliases []string    `yaml:"aliases"`
	Unions  []UnionDesc `yaml:"unions"`
}

type UnionDesc struct {
	Name  string   `yaml:"name"`
	Ctors []string `yaml:"ctors"`
}

type UsageDesc struct {
	Name      string `yaml:"name"`
	Qualifier string `yaml:"qualifier"`
	Namespace string `yaml:"namespace"` // "value" (default) or "type"
}

func loadModuleDesc(path string) (*ModuleDesc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var desc ModuleDesc
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if desc.Module == "" {
		return nil, fmt.Errorf("%s: missing module name", path)
	}
	return &desc, nil
}

func (d *ModuleDesc) header() (elm.ModuleHeader, error) {
	exposing, err := parseExposing(d.Exposing)
	if err != nil {
		return elm.ModuleHeader{}, err
	}
	if exposing == nil {
		// A header always has an exposing clause; default to wildcard.
		exposing = &elm.Exposing{All: true}
	}
	return elm.ModuleHeader{Name: elm.Name(d.Module), Exposing: *exposing}, nil
}

func (d *ModuleDesc) imports() ([]elm.Import, error) {
	var imports []elm.Import
	for _, imp := range d.Imports {
		exposing, err := parseExposing(imp.Exposing)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", imp.Module, err)
		}
		imports = append(imports, elm.Import{
			Module:   elm.Name(imp.Module),
			Alias:    imp.Alias,
			Exposing: exposing,
		})
	}
	return imports, nil
}

func (d *ModuleDesc) declarations() []elm.Declaration {
	var decls []elm.Declaration
	for _, name := range d.Declarations.Values {
		decls = append(decls, elm.ValueDecl{Name: name})
	}
	for _, name := range d.Declarations.Ports {
		decls = append(decls, elm.PortDecl{Name: name})
	}
	for _, name := range d.Declarations.Aliases {
		decls = append(decls, elm.AliasDecl{Name: name})
	}
	for _, union := range d.Declarations.Unions {
		decls = append(decls, elm.UnionDecl{Name: union.Name, Ctors: union.Ctors})
	}
	return decls
}

// parseExposing turns a YAML exposing list into an exposing spec.
// Returns nil for an absent clause.
//
//	["..."]          → exposing (..)
//	["foo"]          → a value
//	["Foo"]          → a type
//	["Foo(..)"]      → a type with all constructors
//	["Foo(A,B)"]     → a type with an explicit constructor set
func parseExposing(entries []string) (*elm.Exposing, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	if len(entries) == 1 && entries[0] == "..." {
		e := elm.ExposeAll()
		return &e, nil
	}
	var items []elm.ExposedItem
	for _, entry := range entries {
		item, err := parseExposedItem(entry)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	e := elm.Expose(items...)
	return &e, nil
}

func parseExposedItem(entry string) (elm.ExposedItem, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return elm.ExposedItem{}, fmt.Errorf("empty exposing entry")
	}
	open := strings.Index(entry, "(")
	if open == -1 {
		if isUpperName(entry) {
			return elm.Type(entry), nil
		}
		return elm.Value(entry), nil
	}
	if !strings.HasSuffix(entry, ")") {
		return elm.ExposedItem{}, fmt.Errorf("malformed exposing entry %q", entry)
	}
	name := strings.TrimSpace(entry[:open])
	inner := strings.TrimSpace(entry[open+1 : len(entry)-1])
	if name == "" {
		// "(::)"-style operator exposing.
		return elm.Value(inner), nil
	}
	if inner == ".." {
		return elm.OpenType(name), nil
	}
	var ctors []string
	for _, ctor := range strings.Split(inner, ",") {
		if ctor = strings.TrimSpace(ctor); ctor != "" {
			ctors = append(ctors, ctor)
		}
	}
	return elm.ClosedType(name, ctors...), nil
}

// isUpperName reports whether an exposing entry names a type (Elm types
// and constructors start with an upper-case letter, values never do).
func isUpperName(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func (u UsageDesc) namespace() (elm.Namespace, error) {
	switch u.Namespace {
	case "", "value":
		return elm.ValueNamespace, nil
	case "type":
		return elm.TypeNamespace, nil
	default:
		return 0, fmt.Errorf("unknown namespace %q", u.Namespace)
	}
}

func (u UsageDesc) display() string {
	if u.Qualifier == "" {
		return u.Name
	}
	return u.Qualifier + "." + u.Name
}
