package parsing

// Backtracking restores the cursor when its upstream parser fails.
type Backtracking[I, O any] struct {
	Upstream Parser[I, O]
}

// Attempt wraps p so that a failed parse leaves the cursor where it started.
func Attempt[I, O any](p Parser[I, O]) Backtracking[I, O] {
	return Backtracking[I, O]{Upstream: p}
}

func (b Backtracking[I, O]) Parse(in *I) (O, bool) {
	saved := *in
	v, ok := b.Upstream.Parse(in)
	if !ok {
		*in = saved
	}
	return v, ok
}
