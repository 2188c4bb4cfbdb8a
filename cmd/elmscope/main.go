// Command elmscope resolves identifier usages against Elm module
// descriptions: it loads dependency interfaces (docs.json or YAML), runs
// the two-phase project pass over the given module descriptions, and
// prints where each listed usage is defined.
//
// Usage:
//
//	elmscope [-interfaces DIR] [-cache FILE] [-debug] module.yaml [more.yaml...]
//
// With a single module description the resolver runs in single-module
// mode; with several, each module also sees the export surfaces of its
// siblings.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/elmscope/internal/deps"
	"github.com/funvibe/elmscope/internal/elm"
	"github.com/funvibe/elmscope/internal/exports"
	"github.com/funvibe/elmscope/internal/project"
	"github.com/funvibe/elmscope/internal/scope"
)

const cacheVersion = "1"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-interfaces DIR] [-cache FILE] [-debug] module.yaml [more.yaml...]\n", os.Args[0])
	os.Exit(2)
}

type options struct {
	interfacesDir string
	cachePath     string
	debug         bool
	moduleFiles   []string
}

func parseArgs(args []string) options {
	var opts options
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-interfaces", "--interfaces":
			i++
			if i >= len(args) {
				usage()
			}
			opts.interfacesDir = args[i]
		case "-cache", "--cache":
			i++
			if i >= len(args) {
				usage()
			}
			opts.cachePath = args[i]
		case "-debug", "--debug":
			opts.debug = true
		case "-help", "--help", "help":
			usage()
		default:
			opts.moduleFiles = append(opts.moduleFiles, args[i])
		}
	}
	if len(opts.moduleFiles) == 0 {
		usage()
	}
	return opts
}

func main() {
	opts := parseArgs(os.Args[1:])
	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}

	depIndex, err := loadDependencies(opts)
	if err != nil {
		log.Error("loading dependency interfaces", "err", err)
		os.Exit(1)
	}

	descs := make([]*ModuleDesc, 0, len(opts.moduleFiles))
	for _, path := range opts.moduleFiles {
		desc, err := loadModuleDesc(path)
		if err != nil {
			log.Error("loading module description", "err", err)
			os.Exit(1)
		}
		descs = append(descs, desc)
	}

	projectMode := len(descs) > 1
	var frozen exports.Index
	if projectMode {
		// Phase 1: every module's export table, folded before any query.
		aggregate := project.NewAggregate()
		for _, desc := range descs {
			header, err := desc.header()
			if err != nil {
				log.Error("bad module header", "module", desc.Module, "err", err)
				os.Exit(1)
			}
			aggregate.Add(project.NewFragment(header, desc.declarations()))
		}
		frozen = aggregate.Freeze()
		log.Debug("project index frozen", "modules", len(frozen.Modules()))
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	failed := false
	for _, desc := range descs {
		if err := resolveModule(desc, depIndex, frozen, projectMode, color); err != nil {
			log.Error("resolving module", "module", desc.Module, "err", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadDependencies(opts options) (exports.Index, error) {
	if opts.interfacesDir == "" {
		return exports.NewIndex(), nil
	}
	if opts.cachePath != "" {
		cache, err := deps.OpenCache(opts.cachePath)
		if err != nil {
			return nil, err
		}
		defer cache.Close()
		if idx, ok, err := cache.Get(opts.interfacesDir, cacheVersion); err != nil {
			log.Debug("interface cache unreadable, reparsing", "err", err)
		} else if ok {
			log.Debug("interface cache hit", "dir", opts.interfacesDir)
			return idx, nil
		}
		idx, err := deps.LoadDir(opts.interfacesDir)
		if err != nil {
			return nil, err
		}
		if err := cache.Put(opts.interfacesDir, cacheVersion, idx); err != nil {
			log.Debug("interface cache write failed", "err", err)
		}
		return idx, nil
	}
	return deps.LoadDir(opts.interfacesDir)
}

func resolveModule(desc *ModuleDesc, depIndex, frozen exports.Index, projectMode, color bool) error {
	header, err := desc.header()
	if err != nil {
		return err
	}
	imports, err := desc.imports()
	if err != nil {
		return err
	}

	var ctx *scope.ModuleContext
	if projectMode {
		ctx = project.ContextFor(header.Name, depIndex, frozen)
	} else {
		ctx = scope.NewModuleContext(header.Name, depIndex)
	}
	for _, imp := range imports {
		ctx.AddImport(imp)
	}
	for _, decl := range desc.declarations() {
		ctx.BindDeclaration(decl)
	}

	fmt.Printf("%s\n", desc.Module)
	for _, usage := range desc.Usages {
		ns, err := usage.namespace()
		if err != nil {
			return fmt.Errorf("usage %s: %w", usage.display(), err)
		}
		qualifier := elm.Name(usage.Qualifier)
		var origin elm.ModuleName
		if ns == elm.TypeNamespace {
			origin = ctx.ResolveType(usage.Name, qualifier)
		} else {
			origin = ctx.ResolveValue(usage.Name, qualifier)
		}
		fmt.Printf("  %-30s -> %s\n", usage.display(), formatOrigin(origin, qualifier, imports, color))
	}
	return nil
}

// formatOrigin renders a resolution. An origin equal to its qualifier is
// either a genuine full-path import match or the echoed answer for an
// unverifiable qualifier; whether any import actually targets that path
// tells the two apart well enough for display.
func formatOrigin(origin, qualifier elm.ModuleName, imports []elm.Import, color bool) string {
	switch {
	case origin.IsLocal():
		return paint(color, "33", "(local)")
	case len(qualifier) > 0 && origin.Equal(qualifier) && !anyImportTargets(imports, origin):
		return paint(color, "31", origin.String()+" (unverified)")
	default:
		return paint(color, "32", origin.String())
	}
}

func anyImportTargets(imports []elm.Import, module elm.ModuleName) bool {
	for _, imp := range imports {
		if imp.Module.Equal(module) {
			return true
		}
	}
	return false
}

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
