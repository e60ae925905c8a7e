/*
File    : nimbus/cmd/nimbus/main.go
Package : main
*/

// Command nimbus is the external entry point described by the
// language's CLI surface: it reads source from a file or an inline
// argument, evaluates it, and prints the resulting value's display
// form. It is glue over the eval package, not part of the language
// core itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nimbus-lang/nimbus/config"
	"github.com/nimbus-lang/nimbus/eval"
	"github.com/nimbus-lang/nimbus/repl"
)

var (
	redColor = color.New(color.FgRed)
)

const (
	defaultBanner  = "Nimbus"
	defaultVersion = "v1.0.0"
	defaultAuthor  = "nimbus-lang"
	defaultLine    = "----------------------------------------------------------------"
	defaultLicense = "MIT"
	defaultPrompt  = "nimbus >>> "
)

func main() {
	var filePath, fileAlias, code, codeAlias string
	var startRepl bool

	flag.StringVar(&filePath, "f", "", "read source from a file")
	flag.StringVar(&fileAlias, "file", "", "read source from a file")
	flag.StringVar(&code, "c", "", "read source from an inline argument")
	flag.StringVar(&codeAlias, "code", "", "read source from an inline argument")
	flag.BoolVar(&startRepl, "repl", false, "start the interactive REPL")
	flag.Parse()

	if filePath == "" {
		filePath = fileAlias
	}
	if code == "" {
		code = codeAlias
	}

	switch {
	case filePath != "":
		runSource(readFile(filePath))
	case code != "":
		runSource(code)
	case startRepl:
		runRepl()
	default:
		// No flag given: per the CLI surface, the tool exits doing nothing.
	}
}

func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", path, err)
		os.Exit(1)
	}
	return string(data)
}

// runSource parses and evaluates source once, printing the resulting
// value's display form on success -- a runtime error is itself a value
// with a display form, per the language's failure model, and prints the
// same way any other result does -- or one of the three parse-failure
// strings the CLI surface requires when parsing itself fails.
func runSource(source string) {
	evaluator := eval.NewEvaluator()
	value, parseErr := evaluator.EvalCode(source)
	if parseErr != nil {
		redColor.Fprintln(os.Stderr, parseErr.Kind.String())
		os.Exit(1)
	}

	fmt.Println(value.Inspect())
}

// runRepl loads optional .nimbusrc.yaml overrides and starts the
// interactive session described in the ambient stack.
func runRepl() {
	cfg, err := config.Load()
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not load config: %v\n", err)
	}

	banner, version, author, line, license, prompt := cfg.Apply(
		defaultBanner, defaultVersion, defaultAuthor, defaultLine, defaultLicense, defaultPrompt,
	)

	r := repl.NewRepl(banner, version, author, line, license, prompt)
	r.Start(os.Stdin, os.Stdout)
}
