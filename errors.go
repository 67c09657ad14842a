package optparse

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

// ErrHelp is returned by Parser.Parse when an option registered with
// AddHelpOption appears on the command line. It is not a parsing failure;
// the caller is expected to print usage and exit.
var ErrHelp = errors.New("help needed")

// ConfigError reports a registration mistake, such as an option label that
// does not satisfy IsLabel. It signals a programming error in the embedding
// application, not bad user input.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

func (e *ConfigError) Unwrap() error { return errdefs.ErrInvalidArgument }

// TooFewArguments reports that the argument vector was empty or that not
// every positional argument received a value.
type TooFewArguments struct{}

func (*TooFewArguments) Error() string { return "too few arguments" }

func (*TooFewArguments) Unwrap() error { return errdefs.ErrInvalidArgument }

// TooManyArguments reports a positional value arriving after every
// positional argument was already filled.
type TooManyArguments struct{}

func (*TooManyArguments) Error() string { return "too many arguments" }

func (*TooManyArguments) Unwrap() error { return errdefs.ErrInvalidArgument }

// ValueNeeded reports a value-requiring option appearing as the final token
// with no value token after it.
type ValueNeeded struct {
	Label string
}

func (e *ValueNeeded) Error() string { return fmt.Sprintf("%s: needs value", e.Label) }

func (e *ValueNeeded) Unwrap() error { return errdefs.ErrInvalidArgument }

// UnknownOption reports a label-shaped token that matches no registered
// option.
type UnknownOption struct {
	Label string
}

func (e *UnknownOption) Error() string { return fmt.Sprintf("unknown option %s", e.Label) }

func (e *UnknownOption) Unwrap() error { return errdefs.ErrNotFound }

// BadValue reports a token that a converter rejected. Reason is a short
// fixed diagnostic ("invalid integer", "out of range", ...), Value is the
// offending token verbatim, and Label is the option label or positional
// argument name the token was bound to. Converters leave Label empty; the
// definition that ran the converter fills it in.
type BadValue struct {
	Reason string
	Label  string
	Value  string
}

func (e *BadValue) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: %s: %q", e.Label, e.Reason, e.Value)
}

func (e *BadValue) Unwrap() error { return errdefs.ErrInvalidArgument }

// badValueFor normalizes a converter failure into a *BadValue bound to the
// definition named by label. Converter errors that are not *BadValue keep
// their message as the reason.
func badValueFor(err error, label, token string) *BadValue {
	var bv *BadValue
	if errors.As(err, &bv) {
		return &BadValue{Reason: bv.Reason, Label: label, Value: token}
	}
	return &BadValue{Reason: err.Error(), Label: label, Value: token}
}
