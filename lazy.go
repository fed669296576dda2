package parsing

import "sync"

// Deferred is a parser built on first use.
type Deferred[I, O any] struct {
	once   sync.Once
	build  func() Parser[I, O]
	parser Parser[I, O]
}

// Lazy returns a parser that calls build the first time it parses and reuses
// the result afterwards. It lets a grammar refer to itself:
//
//	var expr parsing.Parser[string, Expr]
//	expr = parsing.OneOf(number, parens(parsing.Lazy(func() parsing.Parser[string, Expr] { return expr })))
//
// A Deferred must not be copied after first use.
func Lazy[I, O any](build func() Parser[I, O]) *Deferred[I, O] {
	return &Deferred[I, O]{build: build}
}

func (d *Deferred[I, O]) Parse(in *I) (O, bool) {
	d.once.Do(func() {
		d.parser = d.build()
	})
	return d.parser.Parse(in)
}
