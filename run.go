package cmdline

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Exit codes returned by Run. Usage and software errors follow the
// sysexits convention.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitSoftware = 70
)

// Run is the dispatch harness around a single parse: it builds a
// Parser, lets setup register the definitions, parses argv and hands
// the Result to main. Errors are printed as a one-line message on
// stderr and mapped to an exit code: a *DefinitionError to
// ExitSoftware, a *ParseError to ExitUsage, an error from main to
// ExitFailure. A halted parse (a Function option fired, e.g. help or
// version) is a clean ExitOK without calling main.
//
// The returned code is meant for os.Exit, which the caller performs,
// so that Run itself stays testable.
func Run(argv []string, stderr io.Writer, setup func(*Parser) error, main func(*Result) error) int {
	logger := log.New(stderr)

	p := NewParser()
	if err := setup(p); err != nil {
		logger.Error(err.Error())
		return ExitSoftware
	}

	result, err := p.Parse(argv)
	if err != nil {
		logger.Error(err.Error())
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return ExitUsage
		}
		return ExitSoftware
	}
	if _, halted := result.HaltedBy(); halted {
		return ExitOK
	}

	if err := main(result); err != nil {
		logger.Error(err.Error())
		return ExitFailure
	}
	return ExitOK
}

// Main is Run with process defaults, for use as
//
//	func main() { os.Exit(cmdline.Main(setup, run)) }
func Main(setup func(*Parser) error, main func(*Result) error) int {
	return Run(os.Args, os.Stderr, setup, main)
}
