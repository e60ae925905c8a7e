/*
File    : nimbus/eval/eval_controls.go
Package : eval
*/
package eval

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/environment"
	"github.com/nimbus-lang/nimbus/object"
)

// evalCall evaluates the callee and dispatches on whether it's a closure
// or a built-in; anything else yields an error.
func (e *Evaluator) evalCall(node *ast.CallExpression, env *environment.Environment) object.Value {
	callee := e.eval(node.Function, env)
	if isError(callee) {
		return callee
	}

	switch fn := callee.(type) {
	case *object.Function:
		return e.callFunction(fn, node.Argument, env)
	case *object.Builtin:
		return e.callBuiltin(fn, node.Argument, env)
	default:
		return &object.Error{Message: "not callable: " + string(callee.Type())}
	}
}

// callFunction creates a frame parented to the closure's captured
// environment (never the caller's), binds the evaluated argument -- the
// argument itself is evaluated against the caller's environment -- then
// evaluates the body. A return-wrapper unwraps here: return crosses
// exactly one call boundary and no further.
func (e *Evaluator) callFunction(fn *object.Function, argExpr ast.Expression, callerEnv *environment.Environment) object.Value {
	callEnv := environment.NewEnclosed(fn.Env.(*environment.Environment))

	if argExpr != nil && fn.HasParam {
		arg := e.eval(argExpr, callerEnv)
		if isError(arg) {
			return arg
		}
		callEnv.Set(fn.Param, arg)
	}

	body, ok := fn.Body.(ast.Expression)
	if !ok {
		return &object.Error{Message: "malformed function value"}
	}

	result := e.eval(body, callEnv)
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	return result
}

// callBuiltin evaluates the optional argument against the caller's
// environment and invokes the native function.
func (e *Evaluator) callBuiltin(fn *object.Builtin, argExpr ast.Expression, callerEnv *environment.Environment) object.Value {
	var arg object.Value
	if argExpr != nil {
		arg = e.eval(argExpr, callerEnv)
		if isError(arg) {
			return arg
		}
	}
	return fn.Fn(arg)
}
