package optparse

// OptionSpec is the read-only view of a registered option, consumed by
// usage renderers.
type OptionSpec interface {
	// Label returns the option label, e.g. "-x" or "--name".
	Label() string
	// Description returns the human-readable description of the option.
	Description() string
	// NeedsValue reports whether the option consumes a value token.
	NeedsValue() bool
	// ValueName returns the display name of the expected value. It is empty
	// when NeedsValue is false.
	ValueName() string
}

// ArgumentSpec is the read-only view of a registered positional argument.
type ArgumentSpec interface {
	// Name returns the display name of the argument. Names are not unique.
	Name() string
	// Description returns the human-readable description of the argument.
	Description() string
}

// option is one registered option. The variants of the original design
// (field-assigning, constant-assigning, callback, no-value callback) all
// collapse into closures: exactly one of apply and applyNoValue is set, and
// NeedsValue is derived from which one.
type option[C any] struct {
	label       string
	valueName   string
	description string

	apply        func(*C, string) error // set iff the option takes a value
	applyNoValue func(*C) error         // set iff it does not
}

func (o *option[C]) Label() string       { return o.label }
func (o *option[C]) Description() string { return o.description }
func (o *option[C]) NeedsValue() bool    { return o.apply != nil }
func (o *option[C]) ValueName() string   { return o.valueName }

// argument is one registered positional argument. A positional always
// consumes exactly one token, so there is no no-value shape.
type argument[C any] struct {
	name        string
	description string
	apply       func(*C, string) error
}

func (a *argument[C]) Name() string        { return a.name }
func (a *argument[C]) Description() string { return a.description }

// valueOption builds an option that converts its value token with conv and
// hands the result to act. Conversion failures come back as *BadValue
// bound to the option label.
func valueOption[C, T any](label, valueName, description string, conv Converter[T], act func(*C, T)) *option[C] {
	o := &option[C]{label: label, valueName: valueName, description: description}
	o.apply = func(c *C, token string) error {
		v, err := conv(token)
		if err != nil {
			return badValueFor(err, label, token)
		}
		act(c, v)
		return nil
	}
	return o
}

// noValueOption builds an option that runs act when matched. act never
// fails for the exported registration shapes; the help shape returns
// ErrHelp to abort the parse.
func noValueOption[C any](label, description string, act func(*C) error) *option[C] {
	return &option[C]{label: label, description: description, applyNoValue: act}
}

// valueArgument builds a positional argument definition. Conversion
// failures come back as *BadValue bound to the argument name.
func valueArgument[C, T any](name, description string, conv Converter[T], act func(*C, T)) *argument[C] {
	return &argument[C]{
		name:        name,
		description: description,
		apply: func(c *C, token string) error {
			v, err := conv(token)
			if err != nil {
				return badValueFor(err, name, token)
			}
			act(c, v)
			return nil
		},
	}
}
