/*
File    : nimbus/eval/eval_assignments.go
Package : eval
*/
package eval

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/environment"
	"github.com/nimbus-lang/nimbus/object"
)

// evalAssign evaluates the right-hand side and stores it under the
// identifier's name in env -- the current frame, never an ancestor's.
func (e *Evaluator) evalAssign(node *ast.AssignExpression, env *environment.Environment) object.Value {
	val := e.eval(node.Value, env)
	if isError(val) {
		return val
	}
	return env.Set(node.Name, val)
}
