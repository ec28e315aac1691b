// SPDX-License-Identifier: MIT

// Command gridcat loads a block of equal-width text lines as a grid and
// prints it by rows, by columns or in storage order, optionally through a
// cropped window.
//
//	gridcat --mode cols --crop 1:3,0: board.txt
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
