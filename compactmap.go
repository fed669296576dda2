package parsing

// Filtered is a parser whose transform may reject the upstream output.
type Filtered[I, A, B any] struct {
	Upstream  Parser[I, A]
	Transform func(A) (B, bool)
}

// CompactMap returns a parser that runs upstream and passes its output
// through transform. The parse fails when either upstream fails or transform
// returns false, and in both cases the cursor is restored.
func CompactMap[I, A, B any](upstream Parser[I, A], transform func(A) (B, bool)) Filtered[I, A, B] {
	return Filtered[I, A, B]{Upstream: upstream, Transform: transform}
}

func (f Filtered[I, A, B]) Parse(in *I) (B, bool) {
	saved := *in
	v, ok := f.Upstream.Parse(in)
	if ok {
		if out, ok := f.Transform(v); ok {
			return out, true
		}
	}
	*in = saved
	var zero B
	return zero, false
}
