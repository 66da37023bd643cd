package workload

import "fmt"

// FileError reports an input or output file that could not be opened, read or written.
type FileError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError reports a malformed directive, a non-integer numeric field or a
// missing token. Line is 1-based; 0 means the error is not tied to a line.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("parse error at %s: %s: %v", loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse error at %s: %s", loc, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a well-formed scenario whose values are inconsistent,
// such as a processcount mismatch or rr without a quantum.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "invalid scenario: " + e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
