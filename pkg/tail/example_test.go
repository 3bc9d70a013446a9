package tail_test

import (
	"fmt"
	"os"

	"github.com/aretw0/htmlpp/pkg/tail"
)

func ExampleCommonTail() {
	fmt.Println(tail.CommonTail(0xabc, 0x12c))
	// Output: 16
}

func ExampleReport() {
	_ = tail.Report(os.Stdout)
	// Output:
	// 4 2 2
	// 2748 300 16
	// 0 0 1
	// 11 40 1
	// 273 785 512
}
