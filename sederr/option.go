package sederr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option  { return func(e *Error) { e.Message = msg } }
func WithSeverity(s Severity) Option { return func(e *Error) { e.Severity = s } }

// WithPosition records the input line and column the problem was found at.
func WithPosition(line, column int) Option {
	return func(e *Error) { e.Line, e.Column = line, column }
}
