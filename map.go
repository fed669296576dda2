package parsing

// Mapped is a parser that transforms the output of another parser.
type Mapped[I, A, B any] struct {
	// Upstream is the parser whose output is transformed.
	Upstream Parser[I, A]
	// Transform is applied to every value Upstream produces.
	Transform func(A) B
}

// Map returns a parser that runs upstream and passes its output through
// transform. Map consumes exactly what upstream consumes and fails exactly
// when upstream fails; transform is never called on failure.
//
// transform must be total. A transform that can reject its input belongs in
// CompactMap.
func Map[I, A, B any](upstream Parser[I, A], transform func(A) B) Mapped[I, A, B] {
	return Mapped[I, A, B]{Upstream: upstream, Transform: transform}
}

func (m Mapped[I, A, B]) Parse(in *I) (B, bool) {
	v, ok := m.Upstream.Parse(in)
	if !ok {
		var zero B
		return zero, false
	}
	return m.Transform(v), true
}
