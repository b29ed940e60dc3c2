package cmd

import (
	"errors"
	"fmt"
	"io"
	"kaleido/ast"
	"kaleido/common"
	"kaleido/config"
	"kaleido/generate"
	"kaleido/report"
	"kaleido/syntax"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/kr/pretty"
)

// RunCompiler is the main entry point for the `kaleido` CLI utility.  This
// should be called directly from main.  It returns the exit code.
func RunCompiler() int {
	return Execute(os.Args, os.Stdin, os.Stdout, os.Stderr)
}

// Execute runs the `kaleido` CLI over the given arguments (including the
// program name) and standard streams.  It returns the exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("kaleido", "kaleido is a front end for the Kaleidoscope language", true)
	cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	cli.AddStringArg("config", "c", "the path to the configuration file", false)

	cli.AddSubcommand("repl", "run the interactive top level loop", true)

	buildCmd := cli.AddSubcommand("build", "compile a source file to LLVM IR", true)
	buildCmd.AddPrimaryArg("source-path", "the path to the source file", true)
	buildCmd.AddStringArg("output", "o", "the path to write the LLVM IR to", false)

	parseCmd := cli.AddSubcommand("parse", "parse a source file and print its AST", true)
	parseCmd.AddPrimaryArg("source-path", "the path to the source file", true)
	formatArg := parseCmd.AddSelectorArg("format", "f", "the AST output format", false, []string{"sexpr", "yaml", "pretty"})
	formatArg.SetDefaultValue("sexpr")

	cli.AddSubcommand("version", "print the Kaleido version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		report.PrintErrorMessage(stderr, "CLI Usage Error", err)
		return 1
	}

	subcmdName, subResult, _ := result.Subcommand()
	if subcmdName == "version" {
		report.PrintInfoMessage(stdout, "Kaleido Version", common.KaleidoVersion)
		return 0
	}

	// load the configuration and create the session's reporter
	conf, err := loadConfig(result)
	if err != nil {
		report.PrintErrorMessage(stderr, "Config Error", err)
		return 1
	}

	rep := report.NewReporter(stderr, conf.LogLevel)

	switch subcmdName {
	case "build":
		return execBuildCommand(subResult, conf, rep, stdout)
	case "parse":
		return execParseCommand(subResult, conf, rep, stdout)
	default:
		return execReplCommand(conf, rep, stdin, stdout, stderr)
	}
}

// loadConfig loads the configuration selected by the command line.  The log
// level given on the command line overrides the configured one.
func loadConfig(result *olive.ArgParseResult) (*config.Config, error) {
	path, explicit := common.ConfigFileName, false
	if configArg, ok := result.Arguments["config"]; ok {
		path, explicit = configArg.(string), true
	}

	conf, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}

	if logLvlArg, ok := result.Arguments["loglevel"]; ok {
		conf.LogLevel, _ = report.ParseLogLevel(logLvlArg.(string))
	}

	return conf, nil
}

// -----------------------------------------------------------------------------

// execReplCommand runs the interactive loop over stdin.  Prompts are written
// to stderr and the accumulated module is printed to stdout at the end of
// input.
func execReplCommand(conf *config.Config, rep *report.Reporter, stdin io.Reader, stdout, stderr io.Writer) int {
	rep.SetSource("", common.StdinReprPath)

	precs := conf.Precedences()
	rep.ReportInfo("Binary operators:", string(precs.Operators()))

	gen := generate.NewGenerator(conf.ModuleName, rep)
	parser := syntax.NewParser(stdin, precs, rep)

	NewDriver(parser, gen, rep, conf.Prompt, stderr).Run()
	fmt.Fprintln(stderr)
	fmt.Fprint(stdout, gen.String())

	// syntax and codegen errors are recovered from interactively
	if parser.Err() != nil {
		return 1
	}

	return 0
}

// execBuildCommand runs the driver loop over a source file and writes the
// resulting module.  No output is written if any errors occurred.
func execBuildCommand(result *olive.ArgParseResult, conf *config.Config, rep *report.Reporter, stdout io.Writer) int {
	srcPath, _ := result.PrimaryArg()

	f, err := openSource(srcPath, rep)
	if err != nil {
		return 1
	}
	defer f.Close()

	gen := generate.NewGenerator(conf.ModuleName, rep)
	parser := syntax.NewParser(f, conf.Precedences(), rep)

	if !NewDriver(parser, gen, rep, "", nil).Run() {
		return 1
	}

	if outArg, ok := result.Arguments["output"]; ok {
		if err := os.WriteFile(outArg.(string), []byte(gen.String()), 0o644); err != nil {
			rep.ReportFatal("failed to write output: %s", err)
			return 1
		}

		return 0
	}

	fmt.Fprint(stdout, gen.String())
	return 0
}

// execParseCommand parses every top level construct of a source file and
// prints the resulting ASTs in the selected format.
func execParseCommand(result *olive.ArgParseResult, conf *config.Config, rep *report.Reporter, stdout io.Writer) int {
	srcPath, _ := result.PrimaryArg()

	f, err := openSource(srcPath, rep)
	if err != nil {
		return 1
	}
	defer f.Close()

	parser := syntax.NewParser(f, conf.Precedences(), rep)
	defs, errs := parser.ParseAll()
	if err := parser.Err(); err != nil {
		rep.ReportStdError(err)
		return 1
	}

	format := "sexpr"
	if formatArg, ok := result.Arguments["format"]; ok {
		format = formatArg.(string)
	}

	if err := printDefs(stdout, defs, format); err != nil {
		rep.ReportStdError(err)
		return 1
	}

	if len(errs) > 0 {
		return 1
	}

	return 0
}

// printDefs prints top level ASTs in the given format.
func printDefs(w io.Writer, defs []ast.Def, format string) error {
	switch format {
	case "yaml":
		nodes := make([]ast.Node, len(defs))
		for i, def := range defs {
			nodes[i] = def
		}

		return ast.FprintYAML(w, nodes...)
	case "pretty":
		for _, def := range defs {
			if _, err := pretty.Fprintf(w, "%# v\n", def); err != nil {
				return err
			}
		}
	case "sexpr":
		for _, def := range defs {
			if _, err := fmt.Fprintln(w, def.String()); err != nil {
				return err
			}
		}
	default:
		return errors.New("unknown AST format: " + format)
	}

	return nil
}

// openSource opens a source file and points the reporter at it so that
// diagnostics display the offending source text.  Files without the source
// file extension are accepted with a warning.
func openSource(srcPath string, rep *report.Reporter) (*os.File, error) {
	absPath, err := filepath.Abs(srcPath)
	if err != nil {
		rep.ReportFatal("invalid source path: %s", err)
		return nil, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		rep.ReportFatal("failed to open source: %s", err)
		return nil, err
	}

	rep.SetSource(absPath, srcPath)

	if filepath.Ext(srcPath) != common.SourceFileExt {
		rep.ReportCompileWarning(nil, "source file does not have the `%s` extension", common.SourceFileExt)
	}

	return f, nil
}
