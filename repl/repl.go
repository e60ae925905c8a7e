/*
File    : nimbus/repl/repl.go
Package : repl

Package repl implements the Read-Eval-Print Loop for the Nimbus
interpreter. The REPL provides an interactive environment where users
can enter Nimbus expressions line by line, see immediate results,
navigate history with the arrow keys, and receive colored feedback for
different kinds of output.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/nimbus-lang/nimbus/eval"
	"github.com/nimbus-lang/nimbus/object"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: expression results and version info
// - redColor: error messages and warnings
// - greenColor: banner and success messages
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates
// all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Nimbus!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, set up readline
// for line editing and history, create a persistent evaluator, and
// process input until '.exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery parses and evaluates one line of input, recovering
// from any panic so a single bad line never kills the session. Unlike
// file execution, the REPL keeps running after an error so the user can
// correct the mistake and try again.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	value, parseErr := evaluator.EvalCode(line)
	if parseErr != nil {
		redColor.Fprintf(writer, "%s: %s\n", parseErr.Kind, parseErr.Message)
		return
	}

	if errVal, ok := value.(*object.Error); ok {
		redColor.Fprintf(writer, "%s\n", errVal.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", value.Inspect())
}
