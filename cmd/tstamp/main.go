package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapmux/tstamp/daymath"
	"github.com/leapmux/tstamp/internal/logging"
)

var version = "dev"

// clock is the time source for relative output and day math.
var clock = daymath.SystemClock

const usage = "usage: tstamp [parse|convert|next-day|days-back|zones|version] [flags]"

func main() {
	logging.Setup()

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("missing command\n%s", usage)
	}

	switch args[0] {
	case "parse":
		return runParse(args[1:], stdout)
	case "convert":
		return runConvert(args[1:], stdin, stdout)
	case "next-day":
		return runNextDay(args[1:], stdout)
	case "days-back":
		return runDaysBack(args[1:], stdout)
	case "zones":
		return runZones(stdout)
	case "version":
		color := false
		if f, ok := stdout.(*os.File); ok {
			color = logging.IsTerminal(f)
		}
		logging.PrintBanner(stdout, version, color)
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[0], usage)
	}
}
