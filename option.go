package cmdline

import "unicode"

// OptionKind selects how an option consumes input during parsing.
type OptionKind uint8

const (
	// Switch is a boolean option, present or absent, taking no value.
	Switch OptionKind = iota
	// OptionalValue takes the next token as its value when one can be
	// spared, and binds the literal true otherwise.
	OptionalValue
	// MandatoryValue requires the next token as its value.
	MandatoryValue
	// Function invokes a handler the moment the option is parsed and
	// halts the parse. No further tokens are processed.
	Function
)

func (k OptionKind) known() bool {
	return k <= Function
}

// Option defines one command line option. At least one of Short and
// Long is required; together they form the option's unique identity.
type Option struct {
	Short string // single-character name, written -x
	Long  string // word name, written --xyz

	Kind OptionKind

	// ValueName is the display name of the value, required for the
	// OptionalValue and MandatoryValue kinds.
	ValueName string

	// Handler is invoked when a Function option is parsed. Required
	// for that kind, ignored for all others.
	Handler func()

	// Check, when not nil, is applied to a value token before binding.
	// A non-nil return rejects the value and stops the parse.
	Check func(value string) error

	// Doc is the help text used by usage rendering.
	Doc string
}

// key returns the identity under which values bind: the long name if
// present, else the short name.
func (o *Option) key() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// flag returns the option as the user writes it, for error messages
// and usage lines.
func (o *Option) flag() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + o.Short
}

func (o *Option) validate() error {
	if len(o.Short) == 0 && len(o.Long) == 0 {
		return defErrorf("option needs a short or a long name")
	}
	if n := len([]rune(o.Short)); n > 1 {
		return defErrorf(`short option name "%s" must be a single character`, o.Short)
	}
	for _, name := range []string{o.Short, o.Long} {
		for _, r := range name {
			if !nameChar(r) {
				return defErrorf(`option name "%s" includes the character '%c'`, name, r)
			}
		}
	}
	if !o.Kind.known() {
		return defErrorf(`option %s has unknown kind %d`, o.flag(), o.Kind)
	}
	switch o.Kind {
	case OptionalValue, MandatoryValue:
		if len(o.ValueName) == 0 {
			return defErrorf(`option %s takes a value and needs a value name`, o.flag())
		}
	case Function:
		if o.Handler == nil {
			return defErrorf(`option %s needs a handler`, o.flag())
		}
	}
	return nil
}

// checkValue runs the validator, if any, converting a rejection into a
// ParseError unless it already is one.
func (o *Option) checkValue(value string) error {
	if o.Check == nil {
		return nil
	}
	if err := o.Check(value); err != nil {
		if _, ok := err.(*ParseError); ok {
			return err
		}
		return parseErrorf(`option %s: invalid value "%s": %v`, o.flag(), value, err)
	}
	return nil
}

// nameChar returns true iff r is valid in an option or argument name.
// Valid characters are letters, digits, the hyphen and the underscore.
func nameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
