package parsing

// Pair holds the outputs of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Sequence runs two parsers one after the other.
type Sequence[I, A, B any] struct {
	First  Parser[I, A]
	Second Parser[I, B]
}

// Take2 returns a parser that runs a and then b on the remaining input.
//
// If b fails the input consumed by a stays consumed. Wrap the result in
// Attempt when the whole sequence must backtrack.
func Take2[I, A, B any](a Parser[I, A], b Parser[I, B]) Sequence[I, A, B] {
	return Sequence[I, A, B]{First: a, Second: b}
}

func (s Sequence[I, A, B]) Parse(in *I) (Pair[A, B], bool) {
	a, ok := s.First.Parse(in)
	if !ok {
		return Pair[A, B]{}, false
	}
	b, ok := s.Second.Parse(in)
	if !ok {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: a, Second: b}, true
}
