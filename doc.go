/*
Package htmlpp bundles two small text utilities behind one CLI.

# Debug-block stripping

Package strip copies a stream line by line and drops every region wrapped in
"@@DEBUG" / "@@END" marker lines, together with the markers themselves. Any other line
containing "@@" is rejected with a *strip.MarkerError that carries the offending line.

	$ htmlpp < page.src.html > page.html

# Trims

Package trim renders decorative borders from run-length patterns: even runs are spaces,
odd runs are asterisks, and whole passes of the pattern are appended until the minimum
length is reached.

	$ htmlpp trim --pattern 1,2,1 --length 8
	 **  **

Package tail holds CommonTail, the largest power of two under which two integers are
congruent, and the fixed pairs it is checked against (htmlpp tail).

# Adapters

The same operations are exposed over HTTP (pkg/adapters/http, htmlpp serve) and as MCP
tools (pkg/adapters/mcp, htmlpp mcp).
*/
package htmlpp
