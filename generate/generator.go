package generate

import (
	"kaleido/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// Generator is responsible for converting Kaleidoscope AST into LLVM IR.  All
// top level constructs of a session are generated into a single LLVM module:
// definitions and external declarations are accumulated so that later
// constructs can call earlier ones.
type Generator struct {
	// rep is the reporter all code generation errors are reported to.
	rep *report.Reporter

	// mod is the LLVM module being generated.
	mod *ir.Module

	// anonCounter is the counter used to name anonymous top level functions.
	anonCounter int

	// namedValues is the scope of the function being generated: it maps each
	// parameter name to its LLVM value.
	namedValues map[string]value.Value

	// localNames counts the uses of each local name in the function being
	// generated so that every instruction receives a unique name.
	localNames map[string]int

	// block stores the current block being generated.
	block *ir.Block
}

// NewGenerator creates a new generator producing a module named moduleName.
func NewGenerator(moduleName string, rep *report.Reporter) *Generator {
	mod := ir.NewModule()
	mod.SourceFilename = moduleName

	return &Generator{
		rep: rep,
		mod: mod,
	}
}

// Module returns the LLVM module being generated.
func (g *Generator) Module() *ir.Module {
	return g.mod
}

// String returns the textual LLVM IR of the whole module.
func (g *Generator) String() string {
	return g.mod.String()
}

// -----------------------------------------------------------------------------

// lookupFunc returns the function of the module with the given name if it
// exists.
func (g *Generator) lookupFunc(name string) (*ir.Func, bool) {
	for _, fn := range g.mod.Funcs {
		if fn.Name() == name {
			return fn, true
		}
	}

	return nil, false
}

// removeFunc removes a function from the module.
func (g *Generator) removeFunc(fn *ir.Func) {
	for i, mfn := range g.mod.Funcs {
		if mfn == fn {
			g.mod.Funcs = append(g.mod.Funcs[:i], g.mod.Funcs[i+1:]...)
			return
		}
	}
}

// errorOn reports a code generation error over the given span and returns it.
func (g *Generator) errorOn(span *report.TextSpan, msg string, a ...interface{}) error {
	cerr := report.Raise(span, msg, a...)

	if g.rep != nil {
		g.rep.ReportCompileError(cerr)
	}

	return cerr
}
