/*
File    : nimbus/eval/eval_conditionals.go
Package : eval
*/
package eval

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/environment"
	"github.com/nimbus-lang/nimbus/object"
)

// evalIf evaluates the condition and branches. A non-boolean condition
// is a runtime error; a false condition with no alternative yields null.
func (e *Evaluator) evalIf(node *ast.IfExpression, env *environment.Environment) object.Value {
	cond := e.eval(node.Condition, env)
	if isError(cond) {
		return cond
	}

	boolean, ok := cond.(*object.Boolean)
	if !ok {
		return &object.Error{Message: "non-boolean condition in if: " + string(cond.Type())}
	}

	if boolean.Value {
		return e.eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.eval(node.Alternative, env)
	}
	return &object.Null{}
}
