package strip

import (
	"errors"
	"fmt"
)

// ErrMalformedMarker is returned when a line contains the control prefix but is neither a
// debug nor an end marker.
var ErrMalformedMarker = errors.New("malformed marker line")

// MarkerError reports the offending line of a malformed marker.
type MarkerError struct {
	LineNo int    // 1-based
	Line   string // Raw line, terminator included
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.LineNo, ErrMalformedMarker, e.Line)
}

// Is lets errors.Is(err, ErrMalformedMarker) match.
func (e *MarkerError) Is(target error) bool {
	return target == ErrMalformedMarker
}
