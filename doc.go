/*
Package cmdline is a tokenizing command line parser. Given a
declarative set of option and argument definitions it scans an
argument vector from left to right, validates it, and produces a
Result from which the program reads its configuration. It is the
engine behind building command line programs without hand-rolling
tokenization.

Definitions are registered up front and checked at registration time:

	p := cmdline.NewParser()
	err := p.AddOption(cmdline.Option{
		Short: "v", Long: "verbose", Kind: cmdline.Switch,
		Doc: "print progress details",
	})
	// ...
	err = p.AddOption(cmdline.Option{
		Short: "o", Long: "output", Kind: cmdline.MandatoryValue,
		ValueName: "FILE", Doc: "write the result to FILE",
	})
	err = p.AddArgument(cmdline.Argument{
		Name: "INPUT", Kind: cmdline.Mandatory,
	})
	err = p.AddArgument(cmdline.Argument{
		Name: "EXTRA...", Kind: cmdline.Optional,
	})

A malformed definition is a *DefinitionError, reported before any user
input is seen: it is a bug in the program, not in its input.

Parsing takes the raw vector with the program name in element 0, the
shape of os.Args:

	result, err := p.Parse(os.Args)

The scan recognizes long options ("--verbose"), long options with a
joined value ("--output=x"), clusters of short options ("-vo" is "-v
-o"), and positional values, which bind to argument slots in
definition order: mandatory slots first, then optional slots, with a
"..." name absorbing every remaining value. Options must come before
the first positional value; bad input of any sort is a *ParseError.

The Result is immutable and its accessors never fail:

	if result.Is("verbose") { ... }
	out := result.Option("output", "a.out").(string)
	in := result.Argument(0, "")

An option of kind Function invokes its handler the moment it is
parsed and halts the scan, typically for --help or --version. The
parser does not exit the process; Result.HaltedBy tells the caller
that it happened, and Run maps it to a zero exit code. Run also maps
the two error kinds to exit codes and prints their one-line message to
standard error, so a complete program is:

	func main() {
		os.Exit(cmdline.Main(setup, body))
	}

Parsing is synchronous and allocation-light, with no I/O beyond what
Function handlers do themselves. A Parser and its Result are owned by
one goroutine; concurrent parses need separate parsers.
*/
package cmdline
