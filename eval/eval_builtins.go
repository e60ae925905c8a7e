/*
File    : nimbus/eval/eval_builtins.go
Package : eval
*/
package eval

import (
	"fmt"

	"github.com/nimbus-lang/nimbus/object"
)

// registerBuiltins installs the four native functions into the root
// frame so they resolve exactly like any other identifier.
func (e *Evaluator) registerBuiltins() {
	e.Root.Set("print", &object.Builtin{Name: "print", Fn: e.builtinPrint})
	e.Root.Set("len", &object.Builtin{Name: "len", Fn: builtinLen})
	e.Root.Set("head", &object.Builtin{Name: "head", Fn: builtinHead})
	e.Root.Set("tail", &object.Builtin{Name: "tail", Fn: builtinTail})
}

// builtinPrint writes the display form of its argument followed by a
// newline to the evaluator's writer and yields null.
func (e *Evaluator) builtinPrint(arg object.Value) object.Value {
	if arg == nil {
		return &object.Error{Message: "wrong number of arguments to `print`: got 0, want 1"}
	}
	fmt.Fprintln(e.Writer, arg.Inspect())
	return &object.Null{}
}

// builtinLen returns the byte length of a string or the element count
// of an array; any other argument is an error.
func builtinLen(arg object.Value) object.Value {
	if arg == nil {
		return &object.Error{Message: "wrong number of arguments to `len`: got 0, want 1"}
	}
	switch val := arg.(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(val.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(val.Elements))}
	default:
		return &object.Error{Message: "argument to `len` not supported, got " + string(arg.Type())}
	}
}

// builtinHead returns the first element of an array; an empty array is
// an error, as is any non-array argument.
func builtinHead(arg object.Value) object.Value {
	if arg == nil {
		return &object.Error{Message: "wrong number of arguments to `head`: got 0, want 1"}
	}
	arr, ok := arg.(*object.Array)
	if !ok {
		return &object.Error{Message: "argument to `head` must be an array, got " + string(arg.Type())}
	}
	if len(arr.Elements) == 0 {
		return &object.Error{Message: "head of empty array"}
	}
	return arr.Elements[0]
}

// builtinTail returns a new array of every element after the first; an
// empty array is an error, as is any non-array argument.
func builtinTail(arg object.Value) object.Value {
	if arg == nil {
		return &object.Error{Message: "wrong number of arguments to `tail`: got 0, want 1"}
	}
	arr, ok := arg.(*object.Array)
	if !ok {
		return &object.Error{Message: "argument to `tail` must be an array, got " + string(arg.Type())}
	}
	if len(arr.Elements) == 0 {
		return &object.Error{Message: "tail of empty array"}
	}
	rest := make([]object.Value, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &object.Array{Elements: rest}
}
