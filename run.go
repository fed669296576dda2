package parsing

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
)

var (
	// ErrNoMatch is reported by Run when the parser fails.
	ErrNoMatch = errors.New("no match")
	// ErrTrailingInput is reported by Run when the parser succeeds but the
	// AtEnd check rejects the remaining input.
	ErrTrailingInput = errors.New("unexpected trailing input")
)

// Error is returned by Run. Remaining is the cursor as the parser left it.
type Error[I any] struct {
	Err       error
	Remaining I
}

func (e *Error[I]) Error() string {
	return fmt.Sprintf("parse: %v", e.Err)
}

func (e *Error[I]) Unwrap() error {
	return e.Err
}

type runConfig[I any] struct {
	atEnd  func(I) bool
	logger commonlog.Logger
}

// RunOption configures Run.
type RunOption[I any] func(*runConfig[I])

// AtEnd makes Run fail with ErrTrailingInput unless done reports that the
// remaining input is exhausted.
func AtEnd[I any](done func(I) bool) RunOption[I] {
	return func(c *runConfig[I]) {
		c.atEnd = done
	}
}

// WithLogger sets the logger Run reports failures to.
func WithLogger[I any](logger commonlog.Logger) RunOption[I] {
	return func(c *runConfig[I]) {
		c.logger = logger
	}
}

// Empty reports whether a string or byte cursor has no input left.
func Empty[I ~string | ~[]byte](in I) bool {
	return len(in) == 0
}

// Run applies p to a copy of input and returns its output. The caller's
// input is never modified.
func Run[I, O any](p Parser[I, O], input I, opts ...RunOption[I]) (O, error) {
	cfg := runConfig[I]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = commonlog.GetLogger(loggerName)
	}

	var zero O
	in := input
	v, ok := p.Parse(&in)
	if !ok {
		cfg.logger.Debugf("run: %T failed", p)
		return zero, &Error[I]{Err: ErrNoMatch, Remaining: in}
	}
	if cfg.atEnd != nil && !cfg.atEnd(in) {
		cfg.logger.Debugf("run: %T left trailing input", p)
		return zero, &Error[I]{Err: ErrTrailingInput, Remaining: in}
	}
	return v, nil
}
