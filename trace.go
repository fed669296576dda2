package parsing

import "github.com/tliron/commonlog"

const loggerName = "parsing"

// Traced logs every attempt of its upstream parser at debug level.
type Traced[I, O any] struct {
	Name     string
	Upstream Parser[I, O]
	// Logger receives the trace. Nil means the "parsing" logger.
	Logger commonlog.Logger
}

// Trace wraps p so that each parse and its outcome are logged under name.
// Output, failure and cursor movement are those of p.
func Trace[I, O any](name string, p Parser[I, O]) Traced[I, O] {
	return Traced[I, O]{Name: name, Upstream: p}
}

func (t Traced[I, O]) Parse(in *I) (O, bool) {
	logger := t.Logger
	if logger == nil {
		logger = commonlog.GetLogger(loggerName)
	}
	if !logger.AllowLevel(commonlog.Debug) {
		return t.Upstream.Parse(in)
	}

	logger.Debugf("%s: attempt", t.Name)
	v, ok := t.Upstream.Parse(in)
	if ok {
		logger.Debugf("%s: matched %v", t.Name, v)
	} else {
		logger.Debugf("%s: failed", t.Name)
	}
	return v, ok
}
