/*
File    : nimbus/eval/evaluator.go
Package : eval
*/

// Package eval implements Nimbus's tree-walking evaluator: it walks an
// ast.Expression against an environment.Environment and produces an
// object.Value, propagating return-wrappers and first-class error values
// as it goes.
package eval

import (
	"io"
	"os"

	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/environment"
	"github.com/nimbus-lang/nimbus/object"
	"github.com/nimbus-lang/nimbus/parser"
)

// Evaluator is the public entry point described by the language's
// external interface: a persistent root environment pre-populated with
// the built-ins, reused across calls so top-level bindings survive
// between REPL inputs.
type Evaluator struct {
	Root   *environment.Environment
	Writer io.Writer
}

// NewEvaluator constructs an interpreter with a fresh root environment
// pre-populated with the built-ins (print, len, head, tail).
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Root:   environment.New(),
		Writer: os.Stdout,
	}
	ev.registerBuiltins()
	return ev
}

// SetWriter redirects the output of the print built-in, used by tests
// and by any embedder that wants to capture output instead of letting it
// reach the process's stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// EvalCode parses source and evaluates the resulting program against the
// evaluator's persistent root environment. A parse failure is returned
// as a *parser.ParseError rather than a value.
func (e *Evaluator) EvalCode(source string) (object.Value, *parser.ParseError) {
	par := parser.NewParser(source)
	program := par.Parse()

	if par.HasErrors() {
		errs := par.GetErrors()
		return nil, &errs[0]
	}

	return e.EvalProgram(program), nil
}

// EvalProgram evaluates a pre-parsed program: each expression runs in
// order against the root environment, and a return-wrapper short-
// circuits the remaining expressions. A top-level return value is
// yielded still wrapped, not unwrapped -- unwrapping only happens at a
// function call boundary (see callFunction).
func (e *Evaluator) EvalProgram(program []ast.Expression) object.Value {
	var result object.Value = &object.Null{}

	for _, expr := range program {
		result = e.eval(expr, e.Root)
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}

	return result
}

// EvalExpression evaluates a single expression against the evaluator's
// persistent environment.
func (e *Evaluator) EvalExpression(expr ast.Expression) object.Value {
	return e.eval(expr, e.Root)
}

// eval is the internal dispatch, parameterized over whatever environment
// the caller is currently evaluating in -- the root for top-level code,
// a fresh child frame for each block, and for each function call a fresh
// frame parented to the closure's captured frame (not the caller's).
func (e *Evaluator) eval(expr ast.Expression, env *environment.Environment) object.Value {
	switch node := expr.(type) {

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: node.Value}
	case *ast.BooleanLiteral:
		return &object.Boolean{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.AssignExpression:
		return e.evalAssign(node, env)

	case *ast.ReturnExpression:
		val := e.eval(node.Value, env)
		return &object.ReturnValue{Value: val}

	case *ast.PrefixExpression:
		right := e.eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefix(node.Operator, right)

	case *ast.InfixExpression:
		return e.evalInfix(node, env)

	case *ast.IfExpression:
		return e.evalIf(node, env)

	case *ast.FunctionLiteral:
		return &object.Function{HasParam: node.Param != nil, Param: paramName(node), Body: node.Body, Env: env}

	case *ast.CallExpression:
		return e.evalCall(node, env)

	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(node, env)

	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)

	case *ast.IndexExpression:
		return e.evalIndex(node, env)

	case *ast.BlockExpression:
		return e.evalBlock(node, env)

	default:
		return &object.Error{Message: "unknown expression type"}
	}
}

func paramName(fn *ast.FunctionLiteral) string {
	if fn.Param == nil {
		return ""
	}
	return fn.Param.Name
}

func isError(v object.Value) bool {
	_, ok := v.(*object.Error)
	return ok
}
