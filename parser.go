// Package optparse parses command line arguments into a caller-defined
// configuration record.
//
// A Parser is built during a setup phase: options are registered under
// labels ("-x", "--name") and positional arguments are appended in the
// order they must appear. Each registration binds a converter for the
// value's type to a setter closure over the record. Parse then walks the
// argument vector once, left to right, dispatching each token to the
// matching definition and failing fast on the first error.
//
// A fully built Parser is safe for concurrent Parse calls except for the
// program name, which every Parse call overwrites. Registration is not
// safe to interleave with anything.
package optparse

import "fmt"

// Parser holds the registered option and argument definitions for one
// program and assembles configuration records of type C from argument
// vectors.
type Parser[C any] struct {
	description string
	programName string

	options     []*option[C]   // first-registration order
	optionIndex map[string]int // label -> index into options
	arguments   []*argument[C] // append order
}

// New returns a Parser with the given program description and no
// definitions.
func New[C any](description string) *Parser[C] {
	return &Parser[C]{
		description: description,
		optionIndex: make(map[string]int),
	}
}

// Description returns the program description given to New.
func (p *Parser[C]) Description() string { return p.description }

// ProgramName returns the first token of the most recent Parse call, or ""
// if Parse has not run.
func (p *Parser[C]) ProgramName() string { return p.programName }

// OptionCount returns the number of registered options.
func (p *Parser[C]) OptionCount() int { return len(p.options) }

// Option returns the option at index i, in the order options were first
// registered. Re-registering a label keeps its original position.
func (p *Parser[C]) Option(i int) OptionSpec { return p.options[i] }

// ArgumentCount returns the number of registered positional arguments.
func (p *Parser[C]) ArgumentCount() int { return len(p.arguments) }

// Argument returns the positional argument at index i, in append order.
func (p *Parser[C]) Argument(i int) ArgumentSpec { return p.arguments[i] }

// IsLabel reports whether token can introduce an option. A label is
// non-empty, starts with a dash, and its second character, when present, is
// neither an ASCII digit nor a dot. Negative numbers like "-5" and "-.5"
// therefore stay positional values, while "-", "--" and "--5" are labels.
func IsLabel(token string) bool {
	if token == "" || token[0] != '-' {
		return false
	}
	if len(token) == 1 {
		return true
	}
	c := token[1]
	return c != '.' && (c < '0' || c > '9')
}

// add inserts o under its label, replacing any existing option in place so
// the display order keeps the first registration's position.
func (p *Parser[C]) add(o *option[C]) error {
	if !IsLabel(o.label) {
		return &ConfigError{Message: "option label must start with dash (-)"}
	}
	if i, ok := p.optionIndex[o.label]; ok {
		p.options[i] = o
		return nil
	}
	p.optionIndex[o.label] = len(p.options)
	p.options = append(p.options, o)
	return nil
}

// AddOption registers an option that converts its value token with the
// built-in converter for T and passes the result to set. set typically
// assigns a field of the record, but any function of the record and the
// value works. An empty valueName selects the default display name for T
// ("N" for integers, "NUM" for floating point, "STR" for strings).
//
// Registering a label twice replaces the first option at its original
// position. A label rejected by IsLabel yields a *ConfigError, as does a T
// with no built-in converter.
func AddOption[C, T any](p *Parser[C], label, valueName, description string, set func(*C, T)) error {
	conv, defName, ok := builtinConverter[T]()
	if !ok {
		return &ConfigError{Message: fmt.Sprintf("no built-in converter for %T", *new(T))}
	}
	if valueName == "" {
		valueName = defName
	}
	return p.add(valueOption(label, valueName, description, conv, set))
}

// AddOptionWith is AddOption with a caller-supplied converter in place of
// the built-in one. T does not need a built-in conversion.
func AddOptionWith[C, T any](p *Parser[C], label, valueName, description string, conv Converter[T], set func(*C, T)) error {
	if valueName == "" {
		_, valueName, _ = builtinConverter[T]()
	}
	return p.add(valueOption(label, valueName, description, conv, set))
}

// AddConstOption registers an option that takes no value and passes a fixed
// constant to set when matched. The classic use is a boolean switch:
//
//	optparse.AddConstOption(p, "--verbose", "enables verbose output",
//		func(c *config, v bool) { c.Verbose = v }, true)
func AddConstOption[C, T any](p *Parser[C], label, description string, set func(*C, T), constant T) error {
	return p.add(noValueOption(label, description, func(c *C) error {
		set(c, constant)
		return nil
	}))
}

// AddNoValueOption registers an option that takes no value and calls fn
// with the record when matched.
func AddNoValueOption[C any](p *Parser[C], label, description string, fn func(*C)) error {
	return p.add(noValueOption(label, description, func(c *C) error {
		fn(c)
		return nil
	}))
}

// AddHelpOption registers an option that takes no value and aborts Parse
// with ErrHelp when matched. The caller catches ErrHelp, renders usage and
// exits; nothing is assigned to the record.
func AddHelpOption[C any](p *Parser[C], label, description string) error {
	return p.add(noValueOption(label, description, func(*C) error {
		return ErrHelp
	}))
}

// AppendArgument appends a positional argument that converts its token with
// the built-in converter for T and passes the result to set. Arguments
// consume non-label tokens in append order; there is no replacement.
func AppendArgument[C, T any](p *Parser[C], name, description string, set func(*C, T)) error {
	conv, _, ok := builtinConverter[T]()
	if !ok {
		return &ConfigError{Message: fmt.Sprintf("no built-in converter for %T", *new(T))}
	}
	p.arguments = append(p.arguments, valueArgument(name, description, conv, set))
	return nil
}

// AppendArgumentWith is AppendArgument with a caller-supplied converter.
// Nothing can fail: argument names are not label-checked.
func AppendArgumentWith[C, T any](p *Parser[C], name, description string, conv Converter[T], set func(*C, T)) {
	p.arguments = append(p.arguments, valueArgument(name, description, conv, set))
}

// Parse consumes an argument vector and returns the populated record.
// argv[0] is recorded verbatim as the program name and never matched
// against any definition. The scan is a single pass: a token satisfying
// IsLabel is resolved against the registered options, anything else fills
// the next positional argument. The first error aborts the parse.
//
// The returned error is one of *TooFewArguments, *TooManyArguments,
// *ValueNeeded, *UnknownOption, *BadValue, or ErrHelp.
func (p *Parser[C]) Parse(argv []string) (C, error) {
	var config C
	if len(argv) == 0 {
		// no token to take the program name from; leave it untouched
		return config, &TooFewArguments{}
	}
	p.programName = argv[0]
	nextPos := 0
	for i := 1; i < len(argv); i++ {
		token := argv[i]
		if IsLabel(token) {
			idx, ok := p.optionIndex[token]
			if !ok {
				return config, &UnknownOption{Label: token}
			}
			o := p.options[idx]
			if o.NeedsValue() {
				if i+1 >= len(argv) {
					return config, &ValueNeeded{Label: token}
				}
				i++
				if err := o.apply(&config, argv[i]); err != nil {
					return config, err
				}
			} else if err := o.applyNoValue(&config); err != nil {
				return config, err
			}
			continue
		}
		if nextPos == len(p.arguments) {
			return config, &TooManyArguments{}
		}
		a := p.arguments[nextPos]
		nextPos++
		if err := a.apply(&config, token); err != nil {
			return config, err
		}
	}
	if nextPos != len(p.arguments) {
		return config, &TooFewArguments{}
	}
	return config, nil
}
