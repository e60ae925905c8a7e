/*
File    : nimbus/eval/eval_collections.go
Package : eval
*/
package eval

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/environment"
	"github.com/nimbus-lang/nimbus/object"
)

// evalArrayLiteral evaluates each element left-to-right into an array
// value; an error in any element short-circuits the literal itself
// (the error becomes the literal's own value; it is not embedded inside
// the array).
func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral, env *environment.Environment) object.Value {
	elements := make([]object.Value, 0, len(node.Elements))
	for _, elemExpr := range node.Elements {
		val := e.eval(elemExpr, env)
		if isError(val) {
			return val
		}
		elements = append(elements, val)
	}
	return &object.Array{Elements: elements}
}

// evalHashLiteral evaluates each key (a restricted literal) and value in
// order, inserting as it goes so a later duplicate key overwrites an
// earlier one.
func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *environment.Environment) object.Value {
	hash := object.NewHash()

	for _, pair := range node.Pairs {
		key := e.eval(pair.Key, env)
		if isError(key) {
			return key
		}
		value := e.eval(pair.Value, env)
		if isError(value) {
			return value
		}
		if !hash.Set(key, value) {
			return &object.Error{Message: "unusable as hash key: " + string(key.Type())}
		}
	}

	return hash
}
