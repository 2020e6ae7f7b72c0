package cmdline

import "strings"

// tokenClass is the result of disambiguating one raw token.
type tokenClass uint8

const (
	tokenPositional tokenClass = iota
	tokenLong                  // --name, possibly --name=value
	tokenCluster               // -xyz, one or more bundled short options
)

// classify decides how a raw token is consumed. A token starting with
// two dashes takes the long-option path, a token with a single leading
// dash and a non-empty rest is a cluster of short options, anything
// else (including a bare "-") is a positional value.
func classify(token string) tokenClass {
	switch {
	case strings.HasPrefix(token, "--"):
		return tokenLong
	case len(token) > 1 && token[0] == '-':
		return tokenCluster
	default:
		return tokenPositional
	}
}

// splitLong separates the name and the =value part of a long option
// token, without the leading dashes. joined is false when the token
// carries no value.
func splitLong(token string) (name, value string, joined bool) {
	rest := token[2:]
	if i := strings.IndexByte(rest, '='); i >= 0 {
		return rest[:i], rest[i+1:], true
	}
	return rest, "", false
}

// scanner walks the raw token vector left to right. It is the only
// mutable state of a parse pass: a cursor over an index-addressable
// buffer plus the flag recording that a positional value was bound,
// which permanently forbids further option tokens.
type scanner struct {
	tokens     []string
	pos        int
	positional bool // a positional value has been bound
}

func newScanner(tokens []string) *scanner {
	return &scanner{tokens: tokens}
}

func (s *scanner) done() bool {
	return s.pos >= len(s.tokens)
}

// next consumes and returns the token under the cursor.
func (s *scanner) next() string {
	t := s.tokens[s.pos]
	s.pos++
	return t
}

// remaining reports how many tokens are left under and after the
// cursor.
func (s *scanner) remaining() int {
	return len(s.tokens) - s.pos
}

// pushBack reinserts a token at the front of the remaining stream. It
// is used for the =value split off a long option token, so that value
// consumption is uniform for both spellings.
func (s *scanner) pushBack(token string) {
	rest := append([]string{token}, s.tokens[s.pos:]...)
	s.tokens = append(s.tokens[:s.pos:s.pos], rest...)
}
