package parsing

// digit consumes one ASCII digit and yields its value. It leaves the cursor
// unchanged when the next byte is not a digit.
func digit() Parser[string, int] {
	return Func[string, int](func(in *string) (int, bool) {
		s := *in
		if len(s) == 0 || s[0] < '0' || s[0] > '9' {
			return 0, false
		}
		*in = s[1:]
		return int(s[0] - '0'), true
	})
}

// char consumes the byte c.
func char(c byte) Parser[string, byte] {
	return Func[string, byte](func(in *string) (byte, bool) {
		s := *in
		if len(s) == 0 || s[0] != c {
			return 0, false
		}
		*in = s[1:]
		return c, true
	})
}

// signedDigit consumes a '-' and then a digit. It does not roll back, so on
// input like "-x" the '-' stays consumed.
func signedDigit() Parser[string, int] {
	return Func[string, int](func(in *string) (int, bool) {
		if _, ok := char('-').Parse(in); !ok {
			return 0, false
		}
		d, ok := digit().Parse(in)
		if !ok {
			return 0, false
		}
		return -d, true
	})
}

// empty succeeds without consuming input.
func empty() Parser[string, struct{}] {
	return Func[string, struct{}](func(in *string) (struct{}, bool) {
		return struct{}{}, true
	})
}

func identity[T any](v T) T {
	return v
}

func compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

type result[O any] struct {
	Value O
	OK    bool
	Rest  string
}

func run[O any](p Parser[string, O], input string) result[O] {
	v, ok := p.Parse(&input)
	return result[O]{Value: v, OK: ok, Rest: input}
}
