package cmdline

import "fmt"

// DefinitionError reports a malformed option or argument definition. It
// surfaces at registration time, before any user input is seen, and
// indicates a bug in the program built on this package.
type DefinitionError struct {
	msg string
}

func (e *DefinitionError) Error() string {
	return e.msg
}

// ParseError reports malformed user input: an unknown option, a missing
// value, a misplaced or superfluous token, or a value rejected by a
// validator. Parsing stops at the first error, there is no recovery.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string {
	return e.msg
}

func defErrorf(format string, a ...any) error {
	return &DefinitionError{msg: fmt.Sprintf(format, a...)}
}

func parseErrorf(format string, a ...any) error {
	return &ParseError{msg: fmt.Sprintf(format, a...)}
}
