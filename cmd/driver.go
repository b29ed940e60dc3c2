// Package cmd is the top-level "driver" package for the Kaleidoscope front end:
// it contains the functionality for parsing command-line arguments, loading
// configuration and running the read-parse-generate loop.
package cmd

import (
	"fmt"
	"io"
	"kaleido/generate"
	"kaleido/report"
	"kaleido/syntax"
)

// Driver runs the top level loop of a session: it reads top level constructs
// from its parser one at a time and hands each one to the generator.
type Driver struct {
	// parser is the parser reading the session's source.
	parser *syntax.Parser

	// gen is the generator accumulating the session's module.
	gen *generate.Generator

	// rep is the reporter shared by the parser and generator.
	rep *report.Reporter

	// prompt is printed to promptOut before each top level construct.  No
	// prompt is printed if promptOut is nil.
	prompt    string
	promptOut io.Writer
}

// NewDriver creates a new driver.  promptOut may be nil to disable prompting.
func NewDriver(parser *syntax.Parser, gen *generate.Generator, rep *report.Reporter, prompt string, promptOut io.Writer) *Driver {
	return &Driver{
		parser:    parser,
		gen:       gen,
		rep:       rep,
		prompt:    prompt,
		promptOut: promptOut,
	}
}

// Run runs the driver loop until the end of input.  It returns false if any
// errors were reported.
//
// top = definition | external | expression | ';'
func (d *Driver) Run() bool {
	for {
		if d.promptOut != nil {
			fmt.Fprint(d.promptOut, d.prompt)
		}

		tok := d.parser.Tok()
		switch {
		case tok.Kind == syntax.TOK_EOF:
			if err := d.parser.Err(); err != nil {
				d.rep.ReportStdError(err)
			}

			return !d.rep.AnyErrors()
		case tok.Is(';'):
			// ignore top-level semicolons
			d.parser.Next()
		case tok.Kind == syntax.TOK_DEF:
			d.handleDefinition()
		case tok.Kind == syntax.TOK_EXTERN:
			d.handleExtern()
		default:
			d.handleTopLevelExpression()
		}
	}
}

// -----------------------------------------------------------------------------

// handleDefinition parses and generates a function definition.  On a syntax
// error, one token is skipped so that the loop makes progress.
func (d *Driver) handleDefinition() {
	fnDef, err := d.parser.ParseDefinition()
	if err != nil {
		d.parser.Next()
		return
	}

	if fn, err := d.gen.GenFunction(fnDef); err == nil {
		d.rep.ReportInfo("Read function definition:", fn.LLString())
	}
}

// handleExtern parses and generates an external declaration.
func (d *Driver) handleExtern() {
	proto, err := d.parser.ParseExtern()
	if err != nil {
		d.parser.Next()
		return
	}

	if fn, err := d.gen.GenPrototype(proto); err == nil {
		d.rep.ReportInfo("Read extern:", fn.LLString())
	}
}

// handleTopLevelExpression parses a top level expression and generates it as
// an anonymous function.
func (d *Driver) handleTopLevelExpression() {
	fnDef, err := d.parser.ParseTopLevelExpression()
	if err != nil {
		d.parser.Next()
		return
	}

	if fn, err := d.gen.GenFunction(fnDef); err == nil {
		d.rep.ReportInfo("Read top-level expression:", fn.LLString())
	}
}
