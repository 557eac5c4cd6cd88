package vocab

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is wrapped by every LineError.
var ErrMalformedLine = errors.New("malformed export line")

// LineError reports a data row that could not be parsed. It is fatal for
// the file being read.
type LineError struct {
	Line   int // 1-based line number within the file
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }
