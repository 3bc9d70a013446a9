// Package trim renders decorative border lines made of alternating space and asterisk runs.
package trim

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultLength is the minimum width used by RenderAllTrims.
	DefaultLength = 64
	// MaxLength is the largest minimum width accepted by CheckLength.
	MaxLength = 4096
)

var (
	// ErrEmptyPattern is returned for a pattern without runs.
	ErrEmptyPattern = errors.New("empty trim pattern")
	// ErrNonPositiveRun is returned when a run length is zero or negative.
	ErrNonPositiveRun = errors.New("trim run length must be positive")
	// ErrLengthOutOfRange is returned by CheckLength.
	ErrLengthOutOfRange = errors.New("trim length out of range")
)

// CheckLength reports whether n is a usable minimum width, 0 through MaxLength.
// Render itself accepts any width; callers taking widths from users check first.
func CheckLength(n int) error {
	if n < 0 || n > MaxLength {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrLengthOutOfRange, n, MaxLength)
	}
	return nil
}

// Pattern is an ordered list of run lengths. Runs at even positions are spaces, runs at
// odd positions are asterisks.
type Pattern []int

// Width is the length of a single pass over the pattern.
func (p Pattern) Width() int {
	w := 0
	for _, run := range p {
		if run > 0 {
			w += run
		}
	}
	return w
}

// Validate checks that the pattern can be rendered.
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	for i, run := range p {
		if run <= 0 {
			return fmt.Errorf("run %d (%d): %w", i, run, ErrNonPositiveRun)
		}
	}
	return nil
}

func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, run := range p {
		parts[i] = strconv.Itoa(run)
	}
	return strings.Join(parts, ",")
}

// ParsePattern reads a comma separated list of run lengths, e.g. "1,2,1".
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyPattern
	}
	fields := strings.Split(s, ",")
	p := make(Pattern, 0, len(fields))
	for _, f := range fields {
		run, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid run %q: %w", f, err)
		}
		p = append(p, run)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Render appends whole passes of p until the line is at least minLength characters.
// The result is not truncated, so it overshoots when minLength is not a multiple of
// p.Width(). Run lengths are expected to be positive; non-positive runs render nothing,
// and a pattern with no positive run renders as "".
func Render(p Pattern, minLength int) string {
	if p.Width() == 0 {
		return ""
	}

	var sb strings.Builder
	for sb.Len() < minLength {
		for n, run := range p {
			if run <= 0 {
				continue
			}
			c := " "
			if n%2 == 1 {
				c = "*"
			}
			sb.WriteString(strings.Repeat(c, run))
		}
	}
	return sb.String()
}

// RenderAll writes, for every pattern in order, a blank line followed by the rendered
// line twice (top and bottom border).
func RenderAll(w io.Writer, patterns []Pattern, length int) error {
	for _, p := range patterns {
		line := Render(p, length)
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", line, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderAllTrims renders the active catalog at DefaultLength.
func RenderAllTrims(w io.Writer) error {
	return RenderAll(w, Catalog(), DefaultLength)
}
