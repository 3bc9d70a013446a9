/*
Package strip removes debug-only regions from a text stream.

A region starts at any line containing "@@DEBUG" and ends at the next line containing
"@@END". Marker lines are never emitted, and everything between them is dropped. Any
other line containing "@@" is rejected with a *MarkerError.

	var out bytes.Buffer
	if err := strip.Filter(os.Stdin, &out); err != nil {
		var me *strip.MarkerError
		if errors.As(err, &me) {
			log.Fatalf("line %d: %q", me.LineNo, me.Line)
		}
	}

Regions do not nest: a second "@@DEBUG" inside a region keeps the stream suppressed and
the first "@@END" closes it. A stream that ends inside a region is not an error.
*/
package strip
