package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/timezone"
)

// runZones prints every zone with its current UTC offset.
func runZones(stdout io.Writer) error {
	now := instant.FromTime(clock())
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, name := range timezone.Names() {
		if z, ok := timezone.Lookup(name); ok {
			fmt.Fprintf(tw, "%s\tfixed\t%s\n", name, z.Offset)
			continue
		}
		nz, err := timezone.LookupNamed(name)
		if err != nil {
			return err
		}
		_, off := now.Time().In(nz.Location()).Zone()
		fmt.Fprintf(tw, "%s\tnamed\t%s\n", name, offsetOf(off))
	}
	return tw.Flush()
}

func offsetOf(secs int) timezone.Offset {
	switch {
	case secs < 0:
		return timezone.West(uint16(-secs))
	case secs > 0:
		return timezone.East(uint16(secs))
	}
	return timezone.None()
}
