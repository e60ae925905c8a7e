/*
File    : nimbus/parser/errors.go
Package : parser
*/
package parser

import "fmt"

// ErrorKind classifies why a parse failed. The grammar distinguishes
// three cases: a token didn't match any registered alternative and
// another might still apply (Recoverable), a chosen alternative was
// committed to and then failed partway through (Unrecoverable), and the
// input ran out before a production could finish (Incomplete).
type ErrorKind int

const (
	Recoverable ErrorKind = iota
	Unrecoverable
	Incomplete
)

func (k ErrorKind) String() string {
	switch k {
	case Recoverable:
		return "Parser error"
	case Unrecoverable:
		return "Parser failure"
	case Incomplete:
		return "Incomplete parsing"
	default:
		return "Parser error"
	}
}

// ParseError is one collected parse failure with its source position.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
}
