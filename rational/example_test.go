// SPDX-License-Identifier: MIT

package rational_test

import (
	"fmt"

	"github.com/katalvlaran/prodrate/rational"
)

// ExampleRational shows exact arithmetic and the three renderings used for display.
func ExampleRational() {
	rate := rational.MustNew(10, 3) // 10/3 items per second
	half := rational.Half

	total := rate.Add(half)
	fmt.Println(total)
	fmt.Println(total.Decimal(3))
	fmt.Println(total.UpDecimal(1))
	fmt.Println(total.Mixed())

	// Output:
	// 23/6
	// 3.833
	// 3.9
	// 3 + 5/6
}

// ExampleFromFloat shows how game-data floats are snapped to thirds.
func ExampleFromFloat() {
	x, _ := rational.FromFloat(0.6666666)
	fmt.Println(x)

	// Output:
	// 2/3
}
