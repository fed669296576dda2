package parsing

// Bound is a parser that chooses its continuation from the upstream output.
type Bound[I, A, B any] struct {
	Upstream  Parser[I, A]
	Transform func(A) Parser[I, B]
}

// FlatMap returns a parser that runs upstream, builds a second parser from
// its output and runs that on the remaining input. If either step fails the
// cursor is restored.
func FlatMap[I, A, B any](upstream Parser[I, A], transform func(A) Parser[I, B]) Bound[I, A, B] {
	return Bound[I, A, B]{Upstream: upstream, Transform: transform}
}

func (b Bound[I, A, B]) Parse(in *I) (B, bool) {
	saved := *in
	v, ok := b.Upstream.Parse(in)
	if ok {
		if out, ok := b.Transform(v).Parse(in); ok {
			return out, true
		}
	}
	*in = saved
	var zero B
	return zero, false
}
