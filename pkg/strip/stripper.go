package strip

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Event describes one processed line.
type Event struct {
	LineNo    int
	Marker    Marker
	Mode      Mode // Mode after the line was handled
	Emitted   bool
	Malformed bool
}

// Observer receives an Event for every line read.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// Stats summarizes a run.
type Stats struct {
	Lines      int
	Emitted    int
	Suppressed int
	Markers    int
}

// Stripper filters debug regions out of a stream. The zero value is not usable; call New.
// A Stripper holds no per-run state and may be reused or shared.
type Stripper struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures a Stripper.
type Option func(*Stripper)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stripper) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an observer notified once per line.
func WithObserver(o Observer) Option {
	return func(s *Stripper) {
		s.observer = o
	}
}

// New creates a Stripper.
func New(opts ...Option) *Stripper {
	s := &Stripper{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run copies r to w, dropping marker lines and every line inside a debug region.
// Lines keep their original terminator. Output is written line by line, so on a
// *MarkerError everything before the offending line has already reached w.
func (s *Stripper) Run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	mode := Passthrough
	br := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, fmt.Errorf("read line %d: %w", stats.Lines+1, readErr)
		}
		if line == "" {
			break
		}
		stats.Lines++

		kind, err := Classify(line)
		if err != nil {
			var me *MarkerError
			if errors.As(err, &me) {
				me.LineNo = stats.Lines
			}
			s.notify(Event{LineNo: stats.Lines, Mode: mode, Malformed: true})
			s.logger.Debug("Malformed marker", "line_no", stats.Lines, "line", strings.TrimRight(line, "\r\n"))
			return stats, err
		}

		if kind != NoMarker {
			stats.Markers++
			prev := mode
			mode = next(mode, kind)
			if prev != mode {
				s.logger.Debug("Mode changed", "line_no", stats.Lines, "from", prev, "to", mode)
			}
			s.notify(Event{LineNo: stats.Lines, Marker: kind, Mode: mode})
		} else if mode == Passthrough {
			if _, err := io.WriteString(w, line); err != nil {
				return stats, fmt.Errorf("write line %d: %w", stats.Lines, err)
			}
			stats.Emitted++
			s.notify(Event{LineNo: stats.Lines, Mode: mode, Emitted: true})
		} else {
			stats.Suppressed++
			s.notify(Event{LineNo: stats.Lines, Mode: mode})
		}

		if readErr != nil {
			break
		}
	}

	if mode == Suppress {
		s.logger.Debug("Stream ended inside debug region", "lines", stats.Lines)
	}
	return stats, nil
}

func (s *Stripper) notify(e Event) {
	if s.observer != nil {
		s.observer.Observe(e)
	}
}

// Filter runs a default Stripper from r to w.
func Filter(r io.Reader, w io.Writer) error {
	_, err := New().Run(context.Background(), r, w)
	return err
}

// String filters an in-memory document. On error the partial output is returned as well.
func String(doc string) (string, error) {
	var sb strings.Builder
	err := Filter(strings.NewReader(doc), &sb)
	return sb.String(), err
}
