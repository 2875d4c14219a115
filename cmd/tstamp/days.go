package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/leapmux/tstamp/daymath"
	"github.com/leapmux/tstamp/instant"
)

func runNextDay(args []string, stdout io.Writer) error {
	cfg, rest, err := loadConfig("next-day", args)
	if err != nil {
		return err
	}

	var next instant.Instant
	switch len(rest) {
	case 0:
		next = daymath.Tomorrow(clock)
	case 1:
		i, err := parseAny(rest[0])
		if err != nil {
			return err
		}
		next = daymath.NextDay(i)
	default:
		return fmt.Errorf("next-day: expected at most one timestamp, got %d", len(rest))
	}
	return printInstant(stdout, cfg.OutputFormat, next)
}

func runDaysBack(args []string, stdout io.Writer) error {
	cfg, rest, err := loadConfig("days-back", args)
	if err != nil {
		return err
	}
	if len(rest) < 1 || len(rest) > 2 {
		return fmt.Errorf("days-back: usage: tstamp days-back N [TIMESTAMP]")
	}

	count, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return fmt.Errorf("days-back: invalid day count %q: %w", rest[0], err)
	}

	from := instant.FromTime(clock())
	if len(rest) == 2 {
		if from, err = parseAny(rest[1]); err != nil {
			return err
		}
	}
	return printInstant(stdout, cfg.OutputFormat, daymath.DaysBackFrom(from, uint32(count)))
}

func printInstant(w io.Writer, format string, i instant.Instant) error {
	text, err := encodeText(encoderFor(format), i)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
