// Command splinectl queries Catmull-Rom splines described in YAML files.
//
// A description names the spline type, how margin handles are obtained, the
// number of integration samples per segment and the handles themselves:
//
//	type: centripetal
//	margins: auto
//	samples: 10
//	handles:
//	  - [0, 0, 0]
//	  - [1, 0, 0]
//	  - [2, 1, 0]
//
// Handles have two or three coordinates. With margins set to explicit, the
// first and last handles are used as margins instead of being extrapolated.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "splinectl:", err)
		os.Exit(1)
	}
}
