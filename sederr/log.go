package sederr

// Log accumulates the problems found while reading a document, in the
// order they were found.
//
// The zero value is an empty log ready for use.
type Log struct {
	errs []*Error
}

// Add appends errs to the log, ignoring nil values, and returns the
// number added.
func (l *Log) Add(errs ...*Error) (added int) {
	for _, err := range errs {
		if err != nil {
			l.errs = append(l.errs, err)
			added++
		}
	}
	return added
}

// Errors returns all logged problems
func (l *Log) Errors() []*Error { return l.errs }

// Len returns the number of logged problems
func (l *Log) Len() int { return len(l.errs) }

// Get returns the n'th logged problem, or nil if n is out of range.
func (l *Log) Get(n int) *Error {
	if n < 0 || n >= len(l.errs) {
		return nil
	}
	return l.errs[n]
}

// NumFailsWithSeverity returns the number of problems logged with exactly
// severity s.
func (l *Log) NumFailsWithSeverity(s Severity) (n int) {
	for _, err := range l.errs {
		if err.Severity == s {
			n++
		}
	}
	return n
}

// AtLeast returns the problems whose severity is s or higher.
func (l *Log) AtLeast(s Severity) (errs []*Error) {
	for _, err := range l.errs {
		if err.Severity >= s {
			errs = append(errs, err)
		}
	}
	return errs
}

// Err returns the first problem of at least SeverityError, or nil when
// the log holds only warnings and notes.
func (l *Log) Err() error {
	for _, err := range l.errs {
		if err.Severity >= SeverityError {
			return err
		}
	}
	return nil
}

// Clear removes all problems from the log
func (l *Log) Clear() { l.errs = nil }
