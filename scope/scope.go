// ==============================================================================================
// FILE: scope/scope.go
// ==============================================================================================
// PACKAGE: scope
// PURPOSE: The lexically nested variable environment of §4.5: a singly linked chain of frames
//          plus a reference to the root view-model, used both by the expression evaluator and by
//          the template render driver to bind loop/block-parameter locals.
// ==============================================================================================

package scope

import "github.com/brightonlang/slimexpr/value"

// Scope is one frame of the lexical environment. Self is the root
// view-model unless a Proc capture overrides it; every child frame shares
// ownership of its parent by holding a pointer to it.
type Scope struct {
	vars   map[string]value.Value
	parent *Scope
	self   value.ViewModel
}

// New creates the outermost Scope for a render, rooted at model.
func New(model value.ViewModel) *Scope {
	return &Scope{vars: make(map[string]value.Value), self: model}
}

// Self returns the root view-model for method dispatch on bare identifiers,
// per §4.5 ("self is the root view-model unless overridden by a Proc capture").
func (s *Scope) Self() value.ViewModel { return s.self }

// Push returns a child scope that shares ownership of s. selfOverride, if
// non-nil, becomes the new frame's Self (used by Proc invocation when the
// capture scope's self should persist, which is the common case — callers
// typically pass nil to inherit s's self unchanged).
func (s *Scope) Push(selfOverride value.ViewModel) *Scope {
	self := s.self
	if selfOverride != nil {
		self = selfOverride
	}
	return &Scope{vars: make(map[string]value.Value), parent: s, self: self}
}

// Get searches inner-to-outer for name, returning the bound value and true
// if found, else (nil, false). Callers that additionally want to fall
// through to a view-model method when no local is bound (the bare-
// identifier case of §4.5) do that themselves by trying the view-model's
// method table after a failed Get.
func (s *Scope) Get(name string) (value.Value, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set writes name in the innermost frame where it is already bound,
// walking outward to find that frame; if name is bound nowhere, it is
// created in the innermost (receiver) frame, per §4.5.
func (s *Scope) Set(name string, v value.Value) {
	for frame := s; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = v
			return
		}
	}
	s.vars[name] = v
}

// Bind defines name in this frame only, used for Proc parameter binding
// and For-loop variable binding where the new frame must shadow, not
// reassign, an outer binding of the same name.
func (s *Scope) Bind(name string, v value.Value) {
	s.vars[name] = v
}

// Iter invokes fn with every name bound in this frame and its ancestors,
// innermost first, used by the template parser to pre-register locals
// into parser.LocalVarNames per §4.5.
func (s *Scope) Iter(fn func(name string)) {
	seen := make(map[string]bool)
	for frame := s; frame != nil; frame = frame.parent {
		for name := range frame.vars {
			if !seen[name] {
				seen[name] = true
				fn(name)
			}
		}
	}
}
