// Package parsing provides a small parser-combinator core.
//
// # Overview
//
// A parser is anything that can consume input from a mutable cursor and maybe
// produce a value:
//
//	type Parser[I, O any] interface {
//	    Parse(in *I) (O, bool)
//	}
//
// The cursor is owned by the caller. A parser advances it in place, so a
// string cursor is consumed with *in = (*in)[n:], and the caller sees exactly
// how much input was used. Failure is reported by the second result, never by
// a panic or an error value, which keeps probing alternatives cheap.
//
// # Cursor rollback
//
// A parser that fails may already have consumed part of its input. Parse makes
// no promise to undo that. Combinators that need backtracking, like Attempt and
// OneOf, take a snapshot of the cursor (saved := *in) and restore it
// themselves.
//
// # Deriving parsers
//
// Derived combinators wrap an upstream parser. Map is the simplest one:
//
//	digit := parsing.Func[string, int](parseDigit)
//	tens := parsing.Map(digit, func(d int) int { return d * 10 })
//
//	in := "7rest"
//	v, ok := tens.Parse(&in) // 70, true, in == "rest"
//
// Map satisfies the functor laws: mapping the identity function changes
// nothing, and mapping f then g is the same as mapping g∘f once.
//
// Run is the entry point for callers that want an error instead of a boolean.
package parsing
