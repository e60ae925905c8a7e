/*
File    : nimbus/eval/eval_access.go
Package : eval
*/
package eval

import (
	"github.com/nimbus-lang/nimbus/ast"
	"github.com/nimbus-lang/nimbus/environment"
	"github.com/nimbus-lang/nimbus/object"
)

// evalIndex evaluates `left[index]`. On an array the index must be an
// integer; out of bounds yields null, not an error. On a hash the index
// must be a hashable kind; a missing key yields null. Any other target
// is an error.
func (e *Evaluator) evalIndex(node *ast.IndexExpression, env *environment.Environment) object.Value {
	left := e.eval(node.Left, env)
	if isError(left) {
		return left
	}
	index := e.eval(node.Index, env)
	if isError(index) {
		return index
	}

	switch target := left.(type) {
	case *object.Array:
		return evalArrayIndex(target, index)
	case *object.Hash:
		return evalHashIndex(target, index)
	default:
		return &object.Error{Message: "index operator not supported: " + string(left.Type())}
	}
}

func evalArrayIndex(arr *object.Array, index object.Value) object.Value {
	idx, ok := index.(*object.Integer)
	if !ok {
		return &object.Error{Message: "array index must be an integer, got " + string(index.Type())}
	}
	if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
		return &object.Null{}
	}
	return arr.Elements[idx.Value]
}

func evalHashIndex(hash *object.Hash, index object.Value) object.Value {
	val, ok := hash.Get(index)
	if !ok {
		if _, hashable := object.Hashable(index); !hashable {
			return &object.Error{Message: "unusable as hash key: " + string(index.Type())}
		}
		return &object.Null{}
	}
	return val
}
