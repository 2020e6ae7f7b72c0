package cmdline

// Parser holds validated option and argument definitions and parses an
// argument vector against them. Definitions are registered with
// AddOption and AddArgument before parsing; the first call to Parse
// closes registration. A Parser is not safe for concurrent use,
// concurrent parses need separate Parser instances.
type Parser struct {
	options   []*Option
	arguments []*Argument
	sealed    bool
}

// NewParser returns an empty Parser.
func NewParser() *Parser {
	return &Parser{}
}

// AddOption registers an option definition. It returns a
// *DefinitionError if the definition is malformed, if its short or
// long name collides with a registered option, or if parsing has
// already started.
func (p *Parser) AddOption(o Option) error {
	if p.sealed {
		return defErrorf(`cannot define option %s: parsing has started`, o.flag())
	}
	if err := o.validate(); err != nil {
		return err
	}
	if dup := p.lookup(o.Short, o.Long); dup != nil {
		return defErrorf(`option %s clashes with option %s`, o.flag(), dup.flag())
	}
	p.options = append(p.options, &o)
	return nil
}

// AddArgument registers a positional argument definition, appending it
// to the binding sequence. It returns a *DefinitionError if the
// definition is malformed or parsing has already started.
func (p *Parser) AddArgument(a Argument) error {
	if p.sealed {
		return defErrorf(`cannot define argument %s: parsing has started`, a.displayName())
	}
	if err := a.validate(); err != nil {
		return err
	}
	p.arguments = append(p.arguments, &a)
	return nil
}

// lookup returns the first registered option whose short name matches
// short or whose long name matches long, or nil. A linear scan is fine
// for the expected option counts (tens, not thousands).
func (p *Parser) lookup(short, long string) *Option {
	for _, o := range p.options {
		if len(short) > 0 && o.Short == short {
			return o
		}
		if len(long) > 0 && o.Long == long {
			return o
		}
	}
	return nil
}

// Parse processes argv, whose element 0 is the program name, strictly
// left to right. On success the returned Result holds every bound
// option and argument value. When a Function option fires its handler
// the parse halts: the Result reports the option through HaltedBy, the
// remaining tokens stay unprocessed and the mandatory-argument check
// is skipped. An empty argv is a *DefinitionError; bad user input is a
// *ParseError.
func (p *Parser) Parse(argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, defErrorf("empty argument vector")
	}
	p.sealed = true
	r := newResult(p, argv[0])
	s := newScanner(argv[1:])

	for !s.done() {
		token := s.next()
		switch classify(token) {
		case tokenLong:
			name, value, joined := splitLong(token)
			if joined {
				s.pushBack(value)
			}
			if err := p.bindOption(s, r, "", name); err != nil {
				return nil, err
			}
		case tokenCluster:
			for _, c := range token[1:] {
				if err := p.bindOption(s, r, string(c), ""); err != nil {
					return nil, err
				}
				if r.halted != "" {
					break
				}
			}
		case tokenPositional:
			if err := p.bindArgument(s, r, token); err != nil {
				return nil, err
			}
		}
		if r.halted != "" {
			return r, nil
		}
	}

	if err := p.checkArgumentCount(r); err != nil {
		return nil, err
	}
	return r, nil
}

// bindOption resolves one option name and consumes its value, if any,
// from the scanner.
func (p *Parser) bindOption(s *scanner, r *Result, short, long string) error {
	flag := "--" + long
	if len(short) > 0 {
		flag = "-" + short
	}
	if s.positional {
		return parseErrorf(`option %s: options must come before arguments`, flag)
	}
	o := p.lookup(short, long)
	if o == nil {
		return parseErrorf(`unknown option %s`, flag)
	}

	switch o.Kind {

	case Function:
		o.Handler()
		r.halted = o.key()

	case Switch:
		r.options[o.key()] = true

	case OptionalValue:
		// The next token is taken as the value only when it is not the
		// last one. A single trailing token is left for the arguments,
		// and the option binds the literal true instead.
		if s.remaining() > 1 {
			value := s.next()
			if err := o.checkValue(value); err != nil {
				return err
			}
			r.options[o.key()] = value
		} else {
			r.options[o.key()] = true
		}

	case MandatoryValue:
		if s.remaining() == 0 {
			return parseErrorf(`option %s: missing parameter %s`, flag, o.ValueName)
		}
		value := s.next()
		if err := o.checkValue(value); err != nil {
			return err
		}
		r.options[o.key()] = value
	}
	return nil
}

// bindArgument binds one positional value to the next unfilled
// mandatory slot, then to the next unfilled optional slot, in
// definition order. A variadic slot always accepts, continuing at
// indices past the defined slots.
func (p *Parser) bindArgument(s *scanner, r *Result, value string) error {
	slot := -1
	var def *Argument

	for i, a := range p.arguments {
		if a.Kind == Mandatory && !r.bound(i) {
			slot, def = i, a
			break
		}
	}
	if def == nil {
		for i, a := range p.arguments {
			if a.Kind != Optional {
				continue
			}
			if a.variadic() {
				slot, def = r.overflowIndex(i), a
				break
			}
			if !r.bound(i) {
				slot, def = i, a
				break
			}
		}
	}
	if def == nil {
		return parseErrorf(`too many arguments: "%s"`, value)
	}
	if err := def.checkValue(value); err != nil {
		return err
	}
	r.arguments[slot] = value
	s.positional = true
	return nil
}

// checkArgumentCount verifies after the last token that every
// mandatory argument was bound.
func (p *Parser) checkArgumentCount(r *Result) error {
	for i, a := range p.arguments {
		if a.Kind == Mandatory && !r.bound(i) {
			return parseErrorf(`missing mandatory argument %s`, a.displayName())
		}
	}
	return nil
}
