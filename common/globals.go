package common

// KaleidoVersion is the current kaleido version as a string.
const KaleidoVersion string = "0.1.0"

// ConfigFileName is the name of the configuration file looked up in the
// working directory when no explicit path is given.
const ConfigFileName string = "kaleido.toml"

// SourceFileExt is the file extension for a Kaleidoscope source file.
const SourceFileExt string = ".kal"

// DefaultModuleName is the name given to the generated LLVM module when the
// configuration does not provide one.
const DefaultModuleName string = "kaleido"

// DefaultPrompt is the prompt displayed by the interactive loop.
const DefaultPrompt string = "ready> "

// StdinReprPath is the representative path used in diagnostics for input read
// from standard input.
const StdinReprPath string = "<stdin>"
