package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata" // NewYork must resolve on hosts without a zoneinfo database.

	"github.com/leapmux/tstamp/instant"
)

// NamedZone is a civil time zone with daylight saving transitions.
type NamedZone struct {
	loc *time.Location
}

// NewYork is America/New_York (EST/EDT).
var NewYork = mustLoad("America/New_York")

var namedZones = map[string]NamedZone{
	NewYork.Name(): NewYork,
}

func mustLoad(name string) NamedZone {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("timezone: load %s: %v", name, err))
	}
	return NamedZone{loc: loc}
}

// LookupNamed returns the registered named zone called name.
func LookupNamed(name string) (NamedZone, error) {
	z, ok := namedZones[name]
	if !ok {
		return NamedZone{}, fmt.Errorf("timezone: unknown named zone %q", name)
	}
	return z, nil
}

// Name returns the IANA name of the zone.
func (z NamedZone) Name() string { return z.loc.String() }

// Location returns the underlying location.
func (z NamedZone) Location() *time.Location { return z.loc }

// ToLocalWall converts the UTC instant i into z's civil time and returns
// that wall-clock reading relabeled as if it were UTC.
func (z NamedZone) ToLocalWall(i instant.Instant) instant.Instant {
	t := i.Time().In(z.loc)
	_, off := t.Zone()
	return i.AddSeconds(int64(off))
}

// FromLocalWall is the inverse of ToLocalWall: the UTC digits of i are read
// as civil time in z and resolved to the instant they denote. Readings in a
// spring-forward gap or fall-back overlap resolve the way time.Date does.
func (z NamedZone) FromLocalWall(i instant.Instant) instant.Instant {
	w := i.Time()
	t := time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), z.loc)
	return instant.FromTime(t)
}

func (z NamedZone) String() string { return z.Name() }
