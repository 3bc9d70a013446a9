package cli

import (
	"fmt"
	"strconv"

	"github.com/aretw0/htmlpp/pkg/tail"
)

// Tail prints the self-test report, or the common tail of one pair when two operands are
// given. Operands accept 0x, 0o and 0b prefixes.
func (e *Env) Tail(args []string) error {
	switch len(args) {
	case 0:
		return tail.Report(e.Stdout)
	case 2:
		w, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid w %q: %w", args[0], err)
		}
		h, err := strconv.ParseUint(args[1], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid h %q: %w", args[1], err)
		}
		_, err = fmt.Fprintln(e.Stdout, w, h, tail.CommonTail(w, h))
		return err
	default:
		return fmt.Errorf("expected 0 or 2 operands, got %d", len(args))
	}
}
