// Command optparse-example exercises every registration shape of the
// optparse package and shows how an application is expected to handle each
// parsing error kind: a targeted diagnostic, the usage text, and a
// non-zero exit.
package main

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/kikuomax/optparse"
)

//go:embed labels.schema.json
var labelsSchemaData []byte

var labelsSchema *jsonschema.Schema

func init() {
	var err error
	labelsSchema, err = jsonschema.CompileString("labels.schema.json", string(labelsSchemaData))
	if err != nil {
		panic(fmt.Errorf("compile labels schema: %w", err))
	}
}

// options is the configuration record the parser fills in.
type options struct {
	VersionRequested bool
	Number           int
	String           string
	Labels           map[string]string
	PositionalNumber int
	PositionalString string
}

// parseLabels converts a JSON object token like {"env":"prod"} into a
// string map, validating it against the embedded schema. Any failure
// surfaces as a bad-value error bound to the --labels option.
func parseLabels(token string) (map[string]string, error) {
	var raw any
	if err := json.Unmarshal([]byte(token), &raw); err != nil {
		return nil, &optparse.BadValue{Reason: "invalid JSON", Value: token}
	}
	if err := labelsSchema.Validate(raw); err != nil {
		return nil, &optparse.BadValue{Reason: "labels do not match schema", Value: token}
	}
	obj := raw.(map[string]any)
	labels := make(map[string]string, len(obj))
	for k, v := range obj {
		labels[k] = v.(string)
	}
	return labels, nil
}

var errExit = color.New(color.FgRed, color.Bold)

func fail(format string, args ...any) {
	errExit.Fprintf(os.Stderr, format+"\n", args...)
}

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	parser := optparse.New[options]("Example program")

	// optional arguments
	must(optparse.AddHelpOption(parser, "-h", "prints usage"))
	must(optparse.AddOption(parser, "-d", "LEVEL", "sets debug level",
		func(o *options, level int) {
			fmt.Printf("set debug level to %d\n", level)
		}))
	must(optparse.AddNoValueOption(parser, "-g", "sets global flag",
		func(o *options) {
			fmt.Println("set global flag")
		}))
	must(optparse.AddOption(parser, "--number", "NUM", "optional numeric value",
		func(o *options, v int) { o.Number = v }))
	must(optparse.AddOption(parser, "--string", "", "optional string value",
		func(o *options, v string) { o.String = v }))
	must(optparse.AddConstOption(parser, "--version", "prints version information and exits",
		func(o *options, v bool) { o.VersionRequested = v }, true))
	must(optparse.AddOptionWith(parser, "--labels", "JSON", "labels as a JSON object",
		parseLabels, func(o *options, v map[string]string) { o.Labels = v }))

	// positional arguments
	must(optparse.AppendArgument(parser, "NUM0", "positional numeric value",
		func(o *options, v int) { o.PositionalNumber = v }))
	must(optparse.AppendArgument(parser, "STR1", "positional string value",
		func(o *options, v string) { o.PositionalString = v }))

	opts, err := parser.Parse(argv)
	if err != nil {
		return report(parser, err)
	}

	if opts.VersionRequested {
		fmt.Println("version: example")
		return 0
	}
	fmt.Printf("optional number: %d\n", opts.Number)
	fmt.Printf("optional string: %s\n", opts.String)
	if len(opts.Labels) > 0 {
		keys := make([]string, 0, len(opts.Labels))
		for k := range opts.Labels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("label %s: %s\n", k, opts.Labels[k])
		}
	}
	fmt.Printf("positional number: %d\n", opts.PositionalNumber)
	fmt.Printf("positional string: %s\n", opts.PositionalString)
	return 0
}

// report prints a targeted diagnostic for each error kind plus the usage
// text, and returns the process exit code.
func report(parser *optparse.Parser[options], err error) int {
	var (
		valueNeeded *optparse.ValueNeeded
		badValue    *optparse.BadValue
		unknown     *optparse.UnknownOption
	)
	switch {
	case errors.Is(err, optparse.ErrHelp):
		parser.WriteUsage(os.Stderr)
		return 1
	case errors.As(err, &valueNeeded):
		fail("%s needs a value", valueNeeded.Label)
	case errors.As(err, &badValue):
		fail("%q is invalid for %s: %s", badValue.Value, badValue.Label, badValue.Reason)
	case errors.As(err, &unknown):
		fail("unknown option: %s", unknown.Label)
	default:
		// too few or too many arguments
		fail("%v", err)
	}
	parser.WriteUsage(os.Stderr)
	return 1
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
