// Package ebnflex provides lexical scanning based on EBNF grammars.
//
// A Lexer is a parsing.Parser over a Source cursor: each Parse call consumes
// one token.
package ebnflex

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parsing"
)

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

const (
	// KindError is the kind of single-byte tokens emitted for input no
	// production matches.
	KindError = "ERROR"
	// KindEOF is the kind of the token that ends a token stream.
	KindEOF = "EOF"
)

// Lexer tokenizes input based on an EBNF grammar.
//
// Productions whose name starts with an uppercase letter are tokens. A Lexer
// holds no per-parse state and may be shared.
type Lexer struct {
	grammar ebnf.Grammar
	kinds   []string // token production names, sorted
}

var _ parsing.Parser[Source, Token] = (*Lexer)(nil)

// NewLexer creates a lexer for the given grammar.
func NewLexer(grammar ebnf.Grammar) *Lexer {
	var kinds []string
	for name, prod := range grammar {
		if prod == nil || prod.Expr == nil {
			continue
		}
		if !isTokenName(name) {
			continue
		}
		kinds = append(kinds, name)
	}
	sort.Strings(kinds)
	return &Lexer{grammar: grammar, kinds: kinds}
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	return grammar, nil
}

// Kinds returns the names of the token productions.
func (l *Lexer) Kinds() []string {
	return append([]string(nil), l.kinds...)
}

// Parse consumes the longest token any token production matches at the
// cursor. Ties go to the production whose name sorts first. Empty matches
// are not tokens. At end of input, or when nothing matches, Parse fails and
// leaves the cursor unchanged.
func (l *Lexer) Parse(in *Source) (Token, bool) {
	if in.AtEOF() {
		return Token{}, false
	}

	m := newMatcher(l.grammar, in.data)
	var bestKind string
	var bestLen int
	for _, name := range l.kinds {
		n := m.matchProduction(name, in.pos.Offset)
		if n > bestLen {
			bestLen = n
			bestKind = name
		}
	}
	if bestLen == 0 {
		return Token{}, false
	}

	return l.consume(in, bestKind, bestLen), true
}

// Kind returns a parser for the single token production name.
func (l *Lexer) Kind(name string) parsing.Parser[Source, Token] {
	return production{lexer: l, name: name}
}

// Literal returns a parser for the token production name that yields the
// token text.
func (l *Lexer) Literal(name string) parsing.Parser[Source, string] {
	return parsing.Map(l.Kind(name), func(t Token) string {
		return t.Literal
	})
}

func (l *Lexer) consume(in *Source, kind string, n int) Token {
	start := in.pos
	tok := Token{
		Kind:     kind,
		Literal:  string(in.data[start.Offset : start.Offset+n]),
		Position: start,
	}
	in.advance(n)
	return tok
}

type production struct {
	lexer *Lexer
	name  string
}

func (p production) Parse(in *Source) (Token, bool) {
	if in.AtEOF() {
		return Token{}, false
	}
	m := newMatcher(p.lexer.grammar, in.data)
	n := m.matchProduction(p.name, in.pos.Offset)
	if n <= 0 {
		return Token{}, false
	}
	return p.lexer.consume(in, p.name, n), true
}

func isTokenName(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// noMatch is the length reported when an expression does not match. A
// length of 0 is a successful empty match.
const noMatch = -1

// matcher holds the memo and cycle-detection tables for one Parse call.
type matcher struct {
	grammar  ebnf.Grammar
	input    []byte
	memo     map[memoKey]int  // key -> match length or noMatch
	visiting map[memoKey]bool // cycle detection
}

func newMatcher(grammar ebnf.Grammar, input []byte) *matcher {
	return &matcher{
		grammar:  grammar,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// match attempts to match an expression at the given offset.
// Returns the length of the match, or noMatch.
func (m *matcher) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return m.matchLiteral(e.String, offset)

	case *ebnf.Range:
		return m.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := m.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := m.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			// An empty body match would repeat forever.
			n := m.match(e.Body, offset+total)
			if n <= 0 {
				break
			}
			total += n
		}
		return total

	case *ebnf.Option:
		if n := m.match(e.Body, offset); n != noMatch {
			return n
		}
		return 0

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchProduction(e.String, offset)

	default:
		return noMatch
	}
}

// matchProduction matches a named production with memoization and cycle
// detection.
func (m *matcher) matchProduction(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := m.memo[key]; ok {
		return result
	}

	// Left recursion: break the cycle.
	if m.visiting[key] {
		return noMatch
	}

	prod, ok := m.grammar[name]
	if !ok || prod.Expr == nil {
		m.memo[key] = noMatch
		return noMatch
	}

	m.visiting[key] = true
	result := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = result
	return result
}

// matchLiteral matches a literal string. The ebnf package has already
// removed the quotes.
func (m *matcher) matchLiteral(lit string, offset int) int {
	if offset+len(lit) > len(m.input) {
		return noMatch
	}
	if string(m.input[offset:offset+len(lit)]) == lit {
		return len(lit)
	}
	return noMatch
}

// matchRange matches a character range such as "a" … "z".
func (m *matcher) matchRange(lo, hi string, offset int) int {
	if offset >= len(m.input) || len(lo) != 1 || len(hi) != 1 {
		return noMatch
	}
	ch := m.input[offset]
	if ch >= lo[0] && ch <= hi[0] {
		return 1
	}
	return noMatch
}
