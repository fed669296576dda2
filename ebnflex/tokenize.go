package ebnflex

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsing"
)

// invalidByte consumes one byte as an ERROR token.
func invalidByte(in *Source) (Token, bool) {
	if in.AtEOF() {
		return Token{}, false
	}
	start := in.pos
	tok := Token{
		Kind:     KindError,
		Literal:  string(in.data[start.Offset]),
		Position: start,
	}
	in.advance(1)
	return tok, true
}

// eof matches the end of input without consuming anything.
func eof(in *Source) (Token, bool) {
	if !in.AtEOF() {
		return Token{}, false
	}
	return Token{Kind: KindEOF, Position: in.pos}, true
}

// Tokens returns a parser that reads every token up to and including the
// final EOF token. Bytes no production matches become ERROR tokens.
func (l *Lexer) Tokens() parsing.Parser[Source, []Token] {
	next := parsing.OneOf[Source, Token](l, parsing.Func[Source, Token](invalidByte))
	stream := parsing.Take2[Source, []Token, Token](parsing.Many[Source, Token](next), parsing.Func[Source, Token](eof))
	return parsing.Map[Source, parsing.Pair[[]Token, Token], []Token](stream, func(p parsing.Pair[[]Token, Token]) []Token {
		return append(p.First, p.Second)
	})
}

// Tokenize reads all tokens from src.
func (l *Lexer) Tokenize(src Source) ([]Token, error) {
	tokens, err := parsing.Run(l.Tokens(), src, parsing.AtEnd(Source.AtEOF))
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", src.pos.Filename, err)
	}
	commonlog.GetLogger("ebnflex").Debugf("tokenized %s: %d tokens", src.pos.Filename, len(tokens))
	return tokens, nil
}

// SkipKinds returns tokens without those whose kind is listed. The EOF token
// is always kept.
func SkipKinds(tokens []Token, kinds ...string) []Token {
	skip := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		skip[k] = true
	}
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == KindEOF || !skip[tok.Kind] {
			out = append(out, tok)
		}
	}
	return out
}
