package logging

import (
	"fmt"
	"io"
)

// ANSI color codes.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	cyan  = "\033[36m"
	dim   = "\033[2m"
)

var logoLines = [5]string{
	`  _       _                        `,
	` | |_ ___| |_ __ _ _ __ ___  _ __  `,
	` | __/ __| __/ _` + "`" + ` | '_ ` + "`" + ` _ \| '_ \ `,
	` | |_\__ \ || (_| | | | | | | |_) |`,
	`  \__|___/\__\__,_|_| |_| |_| .__/ `,
}

// PrintBanner writes the tstamp logo followed by the version line. Colors
// are used only when color is set.
func PrintBanner(w io.Writer, ver string, color bool) {
	for _, line := range logoLines {
		if color {
			fmt.Fprintln(w, bold+cyan+line+reset)
		} else {
			fmt.Fprintln(w, line)
		}
	}
	if color {
		fmt.Fprintf(w, "%s  version %s%s\n", dim, ver, reset)
	} else {
		fmt.Fprintf(w, "  version %s\n", ver)
	}
}
