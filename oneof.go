package parsing

// Alternatives tries a list of parsers in order and returns the first success.
type Alternatives[I, O any] []Parser[I, O]

// OneOf returns a parser that tries each of ps in turn. The cursor is reset
// before every attempt, so a partially consuming alternative does not affect
// the next one. If all alternatives fail the cursor is left where it started.
func OneOf[I, O any](ps ...Parser[I, O]) Alternatives[I, O] {
	return Alternatives[I, O](ps)
}

func (a Alternatives[I, O]) Parse(in *I) (O, bool) {
	saved := *in
	for _, p := range a {
		if v, ok := p.Parse(in); ok {
			return v, true
		}
		*in = saved
	}
	var zero O
	return zero, false
}
