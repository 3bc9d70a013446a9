package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/htmlpp/pkg/trim"
	"github.com/muesli/termenv"
)

// PrintBanner frames the tool name between two trims of the active catalog.
func PrintBanner(w io.Writer, version string, color bool) {
	border := trim.Render(trim.Catalog()[7], 48)
	title := termenv.String(fmt.Sprintf("  htmlpp %s", version))
	if color {
		title = title.Foreground(termenv.ColorProfile().Color("#a78bfa")).Bold()
		border = ColorTrim(border, termenv.ColorProfile())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, border)
	fmt.Fprintln(w)
}
