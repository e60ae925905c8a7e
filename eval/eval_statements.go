/*
File    : nimbus/eval/eval_statements.go
Package : eval
*/
package eval

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/environment"
	"github.com/nimbus-lang/nimbus/object"
)

// evalIdentifier looks the name up along the environment chain; an
// identifier with no binding anywhere in the chain yields a runtime
// error rather than panicking.
func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Value {
	if val, ok := env.Get(node.Name); ok {
		return val
	}
	return &object.Error{Message: "identifier not found: " + node.Name}
}

// evalBlock creates a child frame parented to env, evaluates the inner
// expression sequence in it in order, and yields the sequence's result
// (null for an empty block). A return-wrapper produced inside propagates
// out of the block unchanged -- the block itself never unwraps it.
func (e *Evaluator) evalBlock(node *ast.BlockExpression, env *environment.Environment) object.Value {
	inner := environment.NewEnclosed(env)

	var result object.Value = &object.Null{}
	for _, expr := range node.Expressions {
		result = e.eval(expr, inner)
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}
	return result
}
