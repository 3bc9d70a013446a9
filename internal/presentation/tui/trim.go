package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/htmlpp/pkg/trim"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColorTrim paints every asterisk run of a rendered trim. Spaces are left alone, so the
// visible width does not change. With the Ascii profile the line is returned as is.
func ColorTrim(line string, p termenv.Profile) string {
	if p == termenv.Ascii {
		return line
	}
	color := p.Color("#f472b6")

	var sb strings.Builder
	i := 0
	for i < len(line) {
		j := i
		for j < len(line) && line[j] == line[i] {
			j++
		}
		run := line[i:j]
		if line[i] == '*' {
			sb.WriteString(termenv.String(run).Foreground(color).String())
		} else {
			sb.WriteString(run)
		}
		i = j
	}
	return sb.String()
}

// CatalogMarkdown lists patterns as a markdown table with a short preview of each.
func CatalogMarkdown(name string, patterns []trim.Pattern) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Trim catalog: %s\n\n", name)
	sb.WriteString("| # | Pattern | Width | Preview |\n")
	sb.WriteString("|---|---------|-------|---------|\n")
	for i, p := range patterns {
		preview := strings.ReplaceAll(trim.Render(p, 16), " ", "·")
		fmt.Fprintf(&sb, "| %d | `%s` | %d | `%s` |\n", i, p, p.Width(), preview)
	}
	return sb.String()
}
