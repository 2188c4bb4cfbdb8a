// Package scope is the heart of the engine: a lexical scope stack built
// from externally driven enter/exit notifications, the per-module
// resolution context, and the resolver that answers, for any identifier
// occurrence, which module defines it.
package scope

import "github.com/funvibe/elmscope/internal/elm"

// frame is one lexical nesting level's set of newly bound names, one name
// set per namespace. The module root frame sits at the bottom of the
// stack; let blocks, lambda parameter lists, function argument lists and
// case branch patterns each push a frame of their own.
type frame struct {
	values map[string]struct{}
	types  map[string]struct{}
}

func newFrame() *frame {
	return &frame{
		values: make(map[string]struct{}),
		types:  make(map[string]struct{}),
	}
}

func (f *frame) bind(ns elm.Namespace, name string) {
	if ns == elm.TypeNamespace {
		f.types[name] = struct{}{}
		return
	}
	f.values[name] = struct{}{}
}

func (f *frame) has(ns elm.Namespace, name string) bool {
	if ns == elm.TypeNamespace {
		_, ok := f.types[name]
		return ok
	}
	_, ok := f.values[name]
	return ok
}

// EnterFrame pushes a fresh scope frame. The traversal driver calls this
// when it enters a binding construct, before binding that construct's
// names and visiting its body.
func (c *ModuleContext) EnterFrame() {
	c.frames = append(c.frames, newFrame())
}

// ExitFrame pops the innermost frame. Push and pop must pair up exactly
// with the driver's enter/exit notifications; once they are unbalanced
// the results of later lookups are undefined. The module root frame is
// never popped.
func (c *ModuleContext) ExitFrame() {
	if len(c.frames) > 1 {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

// Bind records a name in the innermost frame. The driver must bind every
// name a declaration or pattern introduces before visiting the construct's
// body, so the binding covers the whole body including recursive
// self-reference.
func (c *ModuleContext) Bind(ns elm.Namespace, name string) {
	c.frames[len(c.frames)-1].bind(ns, name)
}

// IsLocallyBound scans frames innermost-first and reports whether name is
// bound in any of them. A hit in an inner frame shadows imports and outer
// frames alike.
func (c *ModuleContext) IsLocallyBound(ns elm.Namespace, name string) bool {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if c.frames[i].has(ns, name) {
			return true
		}
	}
	return false
}
