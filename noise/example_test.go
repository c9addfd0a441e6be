// SPDX-License-Identifier: GPL-2.0-or-later

package noise_test

import (
	"fmt"

	"squirrel/noise"
)

func ExampleUint32() {
	fmt.Printf("%#08x\n", noise.Uint32(42, 1337))
	// Output: 0x968de4c9
}

func ExampleUint32XY() {
	fmt.Printf("%#08x\n", noise.Uint32XY(3, 4, 7))
	// Output: 0xfd732742
}

func ExampleFloat32Range() {
	fmt.Printf("%.4f\n", noise.Float32Range(-5, 5, 7, 7))
	// Output: 2.8997
}
