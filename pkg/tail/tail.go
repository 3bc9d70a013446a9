// Package tail computes the common low-bit tail of two integers.
//
// CommonTail(w, h) is the largest power of two 2^k such that w and h agree on their k
// lowest bits, counting only while both values still have bits left.
package tail

import (
	"fmt"
	"io"
	"math/big"
)

// Shift returns k, the number of low bits w and h share before either runs out or the
// bits differ.
func Shift(w, h uint64) uint {
	var k uint
	for w != 0 && h != 0 && w&1 == h&1 {
		k++
		w >>= 1
		h >>= 1
	}
	return k
}

// CommonTail returns 1 << Shift(w, h). The minimum is 1.
// Equal operands with the top bit set give 2^64, so the result is a big.Int.
func CommonTail(w, h uint64) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), Shift(w, h))
}

// Case is a fixed input pair of the self-test.
type Case struct {
	W, H uint64
}

var cases = []Case{
	{4, 2},
	{0xabc, 0x12c},
	{0, 0},
	{11, 40},
	{0x111, 0x311},
}

// Cases returns a copy of the fixed self-test pairs.
func Cases() []Case {
	return append([]Case(nil), cases...)
}

// Report prints "w h tail" for every fixed case, in order.
func Report(w io.Writer) error {
	for _, c := range cases {
		if _, err := fmt.Fprintln(w, c.W, c.H, CommonTail(c.W, c.H)); err != nil {
			return err
		}
	}
	return nil
}
