package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"kaleido/common"
	"kaleido/report"
	"kaleido/syntax"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/pelletier/go-toml"
)

// tomlConfigFile represents the configuration file as it is encoded in TOML
type tomlConfigFile struct {
	ModuleName string           `toml:"module-name"`
	LogLevel   string           `toml:"loglevel"`
	Repl       *tomlRepl        `toml:"repl"`
	Operators  map[string]int64 `toml:"operators,omitempty"`
}

// tomlRepl represents the REPL settings as they are encoded in TOML
type tomlRepl struct {
	Prompt *string `toml:"prompt"`
}

// Config is the validated configuration of a Kaleidoscope session.
type Config struct {
	// ModuleName is the name of the generated LLVM module.
	ModuleName string

	// LogLevel is the reporter log level.
	LogLevel int

	// Prompt is the prompt printed by the interactive driver before each top
	// level construct.
	Prompt string

	// Operators holds the binary operator precedences set by the configuration
	// in addition to the standard ones.
	Operators map[rune]int

	// precs is the standard precedence table updated with Operators.
	precs *syntax.PrecedenceTable
}

// Default returns the configuration used in the absence of a config file.
func Default() *Config {
	return &Config{
		ModuleName: common.DefaultModuleName,
		LogLevel:   report.LogLevelVerbose,
		Prompt:     common.DefaultPrompt,
		Operators:  make(map[rune]int),
		precs:      syntax.NewPrecedenceTable(),
	}
}

// Load loads and validates the configuration file at path.  If explicit is
// false, path is the default config location and a missing file simply yields
// the default configuration.
func Load(path string, explicit bool) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Parse(buff)
}

// Parse decodes and validates configuration file contents.
func Parse(buff []byte) (*Config, error) {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, err
	}

	conf := Default()

	if tcf.ModuleName != "" {
		conf.ModuleName = tcf.ModuleName
	}

	if tcf.LogLevel != "" {
		level, ok := report.ParseLogLevel(tcf.LogLevel)
		if !ok {
			return nil, fmt.Errorf("invalid value for `loglevel`: `%s`", tcf.LogLevel)
		}

		conf.LogLevel = level
	}

	if tcf.Repl != nil && tcf.Repl.Prompt != nil {
		conf.Prompt = *tcf.Repl.Prompt
	}

	if err := validateOperators(conf, tcf.Operators); err != nil {
		return nil, err
	}

	return conf, nil
}

// validateOperators checks the `[operators]` table and copies it into conf.
func validateOperators(conf *Config, ops map[string]int64) error {
	// checked in sorted order so that errors are deterministic
	keys := make([]string, 0, len(ops))
	for key := range ops {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		op, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return fmt.Errorf("operator key `%s` must be a single character", key)
		}

		level := ops[key]
		if level < 0 || level > 1<<16 {
			return fmt.Errorf("precedence of operator `%s` out of range: %d", key, level)
		}

		// validates the operator character
		if err := conf.precs.Set(op, int(level)); err != nil {
			return fmt.Errorf("invalid operator `%s`: %w", key, err)
		}

		conf.Operators[op] = int(level)
	}

	return nil
}

// Precedences returns the standard precedence table updated with the
// configured operators.  Each call returns a new table so that sessions
// changing their table do not affect one another.
func (c *Config) Precedences() *syntax.PrecedenceTable {
	return c.precs.Clone()
}
