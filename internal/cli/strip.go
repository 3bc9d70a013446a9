package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/htmlpp/pkg/strip"
)

// Strip filters the named file (or Stdin for "" and "-") to Stdout.
func (e *Env) Strip(ctx context.Context, path string) error {
	var in io.Reader = e.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	stats, err := strip.New(strip.WithLogger(e.Logger)).Run(ctx, in, e.Stdout)
	if err != nil {
		return err
	}

	e.Logger.Debug("Strip finished",
		"lines", stats.Lines,
		"emitted", stats.Emitted,
		"suppressed", stats.Suppressed,
		"markers", stats.Markers,
	)
	return nil
}
