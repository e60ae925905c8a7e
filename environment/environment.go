/*
File    : nimbus/environment/environment.go
Package : environment
*/

// Package environment implements Nimbus's chained lexical scopes: a
// frame holding a name-to-value mapping plus an optional reference to a
// parent frame, grounded in the teacher's scope.Scope.
//
// One deviation from the teacher is deliberate, not stylistic: the
// teacher's Scope.Assign walks up the parent chain looking for an
// existing binding to update. Nimbus's assignment expression writes only
// to the current frame -- no upward resolution, ever. See Set below.
package environment

import "github.com/nimbus-lang/nimbus/object"

// Environment is one lexical frame. Child frames share a parent by
// reference and can outlive it as long as a closure still holds it.
type Environment struct {
	values map[string]object.Value
	parent *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{values: make(map[string]object.Value)}
}

// NewEnclosed creates a child frame parented to outer, used for each
// block and each function invocation.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), parent: outer}
}

// Get walks the parent chain looking up name, returning ok=false if no
// frame in the chain binds it.
func (e *Environment) Get(name string) (object.Value, bool) {
	val, ok := e.values[name]
	if !ok && e.parent != nil {
		return e.parent.Get(name)
	}
	return val, ok
}

// Set writes val under name into the current frame only. It never
// walks up to find and mutate an existing binding in an ancestor frame,
// unlike the teacher's Scope.Assign: an assignment inside a block or
// function body always introduces or overwrites a local binding, and a
// same-named outer binding is left untouched once the inner frame exits.
func (e *Environment) Set(name string, val object.Value) object.Value {
	e.values[name] = val
	return val
}
