package cmdline

// Result is the outcome of a successful parse. It maps option
// identities and positional slot indexes to their bound values and is
// read-only from the moment Parse returns. All accessors are pure
// lookups, safe to call any number of times.
type Result struct {
	parser    *Parser
	prog      string
	options   map[string]any
	arguments map[int]string
	halted    string
}

// newResult returns an empty result, pre-seeded with false for every
// switch.
func newResult(p *Parser, prog string) *Result {
	r := &Result{
		parser:    p,
		prog:      prog,
		options:   make(map[string]any),
		arguments: make(map[int]string),
	}
	for _, o := range p.options {
		if o.Kind == Switch {
			r.options[o.key()] = false
		}
	}
	return r
}

// Prog returns the program name, element 0 of the parsed vector.
func (r *Result) Prog() string {
	return r.prog
}

// Argument returns the positional value bound at index, or fallback
// when the slot is unbound. Slot indexes are 0-based and follow
// argument definition order; a variadic argument continues past the
// defined slots. Argument never fails.
func (r *Result) Argument(index int, fallback string) string {
	if v, ok := r.arguments[index]; ok {
		return v
	}
	return fallback
}

// Option returns the value bound to the named option: true or false
// for a switch, a string for a value option, the literal true for an
// optional-value option given without a value. The name is looked up
// as a long name first, then as a short name. fallback is returned for
// an unbound or undeclared name. Option never fails.
func (r *Result) Option(name string, fallback any) any {
	o := r.parser.lookup("", name)
	if o == nil {
		o = r.parser.lookup(name, "")
	}
	if o == nil {
		return fallback
	}
	if v, ok := r.options[o.key()]; ok {
		return v
	}
	return fallback
}

// Is reports whether the named option was set to anything other than
// the literal false.
func (r *Result) Is(name string) bool {
	v := r.Option(name, false)
	b, ok := v.(bool)
	return !ok || b
}

// HaltedBy returns the identity of the Function option that stopped
// the parse, if one did. The caller decides what a halt means, usually
// a clean exit after the handler printed help or a version string.
func (r *Result) HaltedBy() (string, bool) {
	return r.halted, r.halted != ""
}

// bound reports whether the slot at index holds a value.
func (r *Result) bound(index int) bool {
	_, ok := r.arguments[index]
	return ok
}

// overflowIndex returns the slot a variadic argument at slot binds
// next: its own slot while unbound, then one past the highest bound
// slot.
func (r *Result) overflowIndex(slot int) int {
	if !r.bound(slot) {
		return slot
	}
	n := slot
	for i := range r.arguments {
		if i > n {
			n = i
		}
	}
	return n + 1
}
