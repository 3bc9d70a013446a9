package trim_test

import (
	"fmt"

	"github.com/aretw0/htmlpp/pkg/trim"
)

func ExampleRender() {
	fmt.Printf("%q\n", trim.Render(trim.Pattern{3, 2, 3}, 16))
	// Output:
	// "   **      **   "
}
