package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aretw0/htmlpp/internal/presentation/tui"
	"github.com/aretw0/htmlpp/pkg/trim"
	"github.com/muesli/termenv"
)

// TrimOptions contains the configuration for the trim command.
type TrimOptions struct {
	Catalog string
	Pattern string // Comma separated; renders only this pattern when set
	Length  int
	List    bool
	Color   bool
}

// Trim renders trims to Stdout.
func (e *Env) Trim(opts TrimOptions) error {
	if err := trim.CheckLength(opts.Length); err != nil {
		return err
	}

	patterns, err := trim.Lookup(opts.Catalog)
	if err != nil {
		return err
	}

	if opts.List {
		return e.listTrims(opts, patterns)
	}

	var buf bytes.Buffer
	if opts.Pattern != "" {
		p, err := trim.ParsePattern(opts.Pattern)
		if err != nil {
			return err
		}
		fmt.Fprintln(&buf, trim.Render(p, opts.Length))
	} else if err := trim.RenderAll(&buf, patterns, opts.Length); err != nil {
		return err
	}

	out := buf.String()
	if opts.Color {
		out = tui.ColorTrim(out, termenv.ColorProfile())
	}
	_, err = io.WriteString(e.Stdout, out)
	return err
}

func (e *Env) listTrims(opts TrimOptions, patterns []trim.Pattern) error {
	name := opts.Catalog
	if name == "" {
		name = trim.CatalogActive
	}
	md := tui.CatalogMarkdown(name, patterns)

	if opts.Color {
		rendered, err := tui.NewRenderer()(md)
		if err != nil {
			e.Logger.Warn("Markdown rendering failed, printing raw", "error", err)
		} else {
			md = rendered
		}
	}
	_, err := io.WriteString(e.Stdout, md)
	return err
}
