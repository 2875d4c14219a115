// Package timezone describes the time zones timestamps may be recorded in
// and how to correct an instant recorded in one of them to UTC.
package timezone

import (
	"fmt"
	"sort"

	"github.com/leapmux/tstamp/instant"
)

// Kind tags an Offset.
type Kind uint8

const (
	// KindNone is UTC itself.
	KindNone Kind = iota
	// KindWest is an offset in the western hemisphere (UTC-hh:mm).
	KindWest
	// KindEast is an offset in the eastern hemisphere (UTC+hh:mm).
	KindEast
)

// Offset is a fixed correction relative to UTC. The zero value is None.
type Offset struct {
	kind Kind
	secs uint16
}

// None returns the empty offset.
func None() Offset { return Offset{} }

// West returns an offset of secs seconds west of UTC, e.g.
// West(60*60) maps to UTC-01:00.
func West(secs uint16) Offset { return Offset{kind: KindWest, secs: secs} }

// East returns an offset of secs seconds east of UTC, e.g.
// East(60*60) maps to UTC+01:00.
func East(secs uint16) Offset { return Offset{kind: KindEast, secs: secs} }

// Kind returns the offset's tag.
func (o Offset) Kind() Kind { return o.kind }

// Seconds returns the signed offset in seconds, negative west of UTC.
func (o Offset) Seconds() int64 {
	switch o.kind {
	case KindWest:
		return -int64(o.secs)
	case KindEast:
		return int64(o.secs)
	}
	return 0
}

// Apply shifts i by the offset: West subtracts, East adds.
func (o Offset) Apply(i instant.Instant) instant.Instant {
	if o.kind == KindNone {
		return i
	}
	return i.AddSeconds(o.Seconds())
}

func (o Offset) String() string {
	s := o.Seconds()
	if s == 0 && o.kind == KindNone {
		return "UTC"
	}
	sign := '+'
	if s < 0 {
		sign = '-'
		s = -s
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, s/3600, s/60%60)
}

// Zone is a named fixed-offset time zone.
type Zone struct {
	Name   string
	Offset Offset
}

// Add corrects an instant read in z to UTC by applying z's offset.
func (z Zone) Add(i instant.Instant) instant.Instant {
	return z.Offset.Apply(i)
}

func (z Zone) String() string {
	return z.Name + " (" + z.Offset.String() + ")"
}

var (
	// UTC is the zero-offset zone.
	UTC = Zone{Name: "UTC", Offset: None()}
	// EST is US Eastern Standard Time. It ignores daylight saving; see
	// NewYork for that.
	EST = Zone{Name: "EST", Offset: West(5 * 60 * 60)}
)

var fixedZones = map[string]Zone{
	UTC.Name: UTC,
	EST.Name: EST,
}

// Lookup returns the fixed-offset zone registered under name.
func Lookup(name string) (Zone, bool) {
	z, ok := fixedZones[name]
	return z, ok
}

// Names lists every registered zone, fixed and named, sorted.
func Names() []string {
	names := make([]string, 0, len(fixedZones)+len(namedZones))
	for name := range fixedZones {
		names = append(names, name)
	}
	for name := range namedZones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
