package arith_test

import (
	"fmt"

	"github.com/zostay/combo/arith"
)

func Example() {
	for _, in := range []string{"2+3*4", "(2+3)*4", "12+", "abc"} {
		r := arith.Expr(in)
		fmt.Printf("%q %q\n", r.Consumed(), r.Remaining)
	}
	// Output:
	// "2+3*4" ""
	// "(2+3)*4" ""
	// "12" "+"
	// "" "abc"
}
