package parsing

import (
	"errors"
	"testing"

	"github.com/tliron/commonlog"
)

func TestRun(t *testing.T) {
	tens := Map(digit(), func(x int) int { return x * 10 })

	v, err := Run[string, int](tens, "7rest")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != 70 {
		t.Errorf("Run = %d, want 70", v)
	}
}

func TestRunNoMatch(t *testing.T) {
	_, err := Run(digit(), "arest")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}

	var perr *Error[string]
	if !errors.As(err, &perr) {
		t.Fatalf("err = %T, want *Error[string]", err)
	}
	if perr.Remaining != "arest" {
		t.Errorf("Remaining = %q, want %q", perr.Remaining, "arest")
	}
}

func TestRunReportsPartialConsumption(t *testing.T) {
	_, err := Run(signedDigit(), "-x")

	var perr *Error[string]
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *Error[string]", err)
	}
	if perr.Remaining != "x" {
		t.Errorf("Remaining = %q, want %q", perr.Remaining, "x")
	}
}

func TestRunAtEnd(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"7", nil},
		{"7rest", ErrTrailingInput},
		{"x", ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Run(digit(), tt.input, AtEnd(Empty[string]))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunDoesNotModifyInput(t *testing.T) {
	input := []byte("7rest")
	p := Func[[]byte, byte](func(in *[]byte) (byte, bool) {
		if len(*in) == 0 {
			return 0, false
		}
		b := (*in)[0]
		*in = (*in)[1:]
		return b, true
	})

	if _, err := Run[[]byte, byte](p, input, AtEnd(Empty[[]byte])); !errors.Is(err, ErrTrailingInput) {
		t.Fatalf("err = %v, want ErrTrailingInput", err)
	}
	if string(input) != "7rest" {
		t.Errorf("input = %q, want %q", input, "7rest")
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error[string]{Err: ErrNoMatch, Remaining: "x"}
	if got, want := err.Error(), "parse: no match"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRunWithLogger(t *testing.T) {
	logger := commonlog.GetLogger("parsing.test")

	_, err := Run(digit(), "x", WithLogger[string](logger))
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("err = %v, want ErrNoMatch", err)
	}
}
