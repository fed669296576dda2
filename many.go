package parsing

// Repeated applies a parser repeatedly and collects its outputs.
type Repeated[I, O any] struct {
	Element Parser[I, O]
	// Min is the number of elements required for success.
	Min int
	// Max bounds the number of elements. Zero or less means unbounded.
	Max int
}

// Many matches Element zero or more times.
//
// Element must consume input whenever it succeeds; otherwise an unbounded
// repetition never terminates.
func Many[I, O any](element Parser[I, O]) Repeated[I, O] {
	return Repeated[I, O]{Element: element}
}

// Repeat matches element at least min and at most max times.
func Repeat[I, O any](element Parser[I, O], min, max int) Repeated[I, O] {
	return Repeated[I, O]{Element: element, Min: min, Max: max}
}

// Parse collects outputs until Element fails or Max is reached. The input
// consumed by the failing attempt is given back. If fewer than Min elements
// matched, the cursor is restored to where the repetition began.
func (r Repeated[I, O]) Parse(in *I) ([]O, bool) {
	start := *in
	var out []O
	for r.Max <= 0 || len(out) < r.Max {
		saved := *in
		v, ok := r.Element.Parse(in)
		if !ok {
			*in = saved
			break
		}
		out = append(out, v)
	}
	if len(out) < r.Min {
		*in = start
		return nil, false
	}
	return out, true
}
