package cmdline

import "strings"

// variadicMarker ends the name of an argument accepting unlimited
// repeated bindings.
const variadicMarker = "..."

// ArgumentKind states whether a positional argument must be supplied.
// The zero value is not a valid kind.
type ArgumentKind uint8

const (
	// Mandatory arguments must be bound by the end of the parse.
	Mandatory ArgumentKind = iota + 1
	// Optional arguments may be omitted.
	Optional
)

// Argument defines one positional argument. Registration order decides
// binding priority: values fill mandatory slots first, then optional
// slots, each in order of definition. A name ending in "..." marks a
// variadic argument which absorbs every remaining positional value; it
// should be the last argument registered.
type Argument struct {
	Name string
	Kind ArgumentKind

	// Check, same contract as Option.Check.
	Check func(value string) error

	// Doc is the help text used by usage rendering.
	Doc string
}

func (a *Argument) variadic() bool {
	return strings.HasSuffix(a.Name, variadicMarker)
}

// displayName is the name without the variadic marker.
func (a *Argument) displayName() string {
	return strings.TrimSuffix(a.Name, variadicMarker)
}

func (a *Argument) validate() error {
	if len(a.Name) == 0 {
		return defErrorf("argument needs a name")
	}
	if a.Kind != Mandatory && a.Kind != Optional {
		return defErrorf(`argument %s has unknown kind %d`, a.displayName(), a.Kind)
	}
	return nil
}

func (a *Argument) checkValue(value string) error {
	if a.Check == nil {
		return nil
	}
	if err := a.Check(value); err != nil {
		if _, ok := err.(*ParseError); ok {
			return err
		}
		return parseErrorf(`argument %s: invalid value "%s": %v`, a.displayName(), value, err)
	}
	return nil
}
