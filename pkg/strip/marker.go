package strip

import "strings"

const (
	// ControlPrefix marks a line as a control line.
	ControlPrefix = "@@"
	// DebugToken opens a suppressed region.
	DebugToken = "@@DEBUG"
	// EndToken closes a suppressed region.
	EndToken = "@@END"
)

// Mode is the current state of the stream.
type Mode int

const (
	Passthrough Mode = iota
	Suppress
)

func (m Mode) String() string {
	switch m {
	case Passthrough:
		return "passthrough"
	case Suppress:
		return "suppress"
	default:
		return "unknown"
	}
}

// Marker is the classification of a single line.
type Marker int

const (
	NoMarker Marker = iota
	DebugMarker
	EndMarker
)

func (k Marker) String() string {
	switch k {
	case NoMarker:
		return "text"
	case DebugMarker:
		return "debug"
	case EndMarker:
		return "end"
	default:
		return "unknown"
	}
}

// Classify inspects one line. Lines containing the control prefix must carry either the
// debug or the end token; anything else yields a *MarkerError with LineNo left at zero.
func Classify(line string) (Marker, error) {
	if !strings.Contains(line, ControlPrefix) {
		return NoMarker, nil
	}
	switch {
	case strings.Contains(line, DebugToken):
		return DebugMarker, nil
	case strings.Contains(line, EndToken):
		return EndMarker, nil
	default:
		return NoMarker, &MarkerError{Line: line}
	}
}

// next returns the mode after a line of kind k was seen in mode m.
func next(m Mode, k Marker) Mode {
	switch k {
	case DebugMarker:
		return Suppress
	case EndMarker:
		return Passthrough
	default:
		return m
	}
}
