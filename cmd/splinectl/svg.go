package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// formatNumber formats n with at most maxPrec decimals, or with as many as
// needed to represent it exactly if maxPrec is 0.
func formatNumber(n float64, maxPrec int) string {
	var s string
	if maxPrec <= 0 {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

func formatVector(v r3.Vector, maxPrec int) string {
	return formatNumber(v.X, maxPrec) + "," + formatNumber(v.Y, maxPrec) + "," + formatNumber(v.Z, maxPrec)
}

// writeSVGPath writes the polyline through pts, projected onto the x/y
// plane, as SVG path commands.
func writeSVGPath(w io.Writer, pts []r3.Vector, maxPrec int) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	for i, pt := range pts {
		if err != nil {
			return err
		}
		if i == 0 {
			writef("M%s,%s", formatNumber(pt.X, maxPrec), formatNumber(pt.Y, maxPrec))
			continue
		}
		write(space)
		writef("L%s,%s", formatNumber(pt.X, maxPrec), formatNumber(pt.Y, maxPrec))
	}
	return err
}
