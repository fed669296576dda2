package parsing

// Parser consumes input from the cursor in and produces a value of type O.
//
// On success Parse returns the value and true, and in has been advanced past
// the consumed input. On failure it returns the zero value and false. The
// position of in after a failure is up to the implementation.
type Parser[I, O any] interface {
	Parse(in *I) (O, bool)
}

// Func adapts an ordinary function to the Parser interface.
type Func[I, O any] func(in *I) (O, bool)

// Parse calls f(in).
func (f Func[I, O]) Parse(in *I) (O, bool) {
	return f(in)
}
