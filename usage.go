package optparse

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteUsage writes a usage summary to w: a synopsis line, the program
// description, and aligned listings of the registered options and
// positional arguments. It is pure formatting over the introspection
// surface; applications with their own help style can render from
// Option/Argument directly instead.
//
// The synopsis uses ProgramName, so rendering after a failed Parse shows
// the name the program was invoked under.
func (p *Parser[C]) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s", p.programName)
	if len(p.options) > 0 {
		fmt.Fprint(w, " [OPTIONS]")
	}
	for _, a := range p.arguments {
		fmt.Fprintf(w, " %s", a.Name())
	}
	fmt.Fprintf(w, "\n\n%s\n", p.description)
	if len(p.options) > 0 {
		fmt.Fprint(w, "\nOptions:\n")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, o := range p.options {
			if o.NeedsValue() {
				fmt.Fprintf(tw, "  %s %s\t%s\n", o.Label(), o.ValueName(), o.Description())
			} else {
				fmt.Fprintf(tw, "  %s\t%s\n", o.Label(), o.Description())
			}
		}
		tw.Flush()
	}
	if len(p.arguments) > 0 {
		fmt.Fprint(w, "\nArguments:\n")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, a := range p.arguments {
			fmt.Fprintf(tw, "  %s\t%s\n", a.Name(), a.Description())
		}
		tw.Flush()
	}
}
