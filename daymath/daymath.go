// Package daymath computes UTC day boundaries.
package daymath

import (
	"time"

	"github.com/leapmux/tstamp/instant"
)

// DaySecs is the number of seconds in a day. Leap seconds are not
// modelled.
const DaySecs = 24 * 60 * 60

// Clock returns the current time.
type Clock func() time.Time

// SystemClock reads the wall clock.
var SystemClock Clock = time.Now

// NextDay returns the midnight (UTC) following i.
//
// An instant that lies exactly on a whole-second midnight does not advance.
func NextDay(i instant.Instant) instant.Instant {
	return instant.Unix(roundUp(i.Unix(), DaySecs), 0)
}

// DaysBackFrom returns the midnight (UTC) that starts the day count days
// before i's day.
func DaysBackFrom(i instant.Instant, count uint32) instant.Instant {
	return NextDay(i).AddSeconds(-DaySecs * (int64(count) + 1))
}

// DaysBack is DaysBackFrom relative to now.
func DaysBack(now Clock, count uint32) instant.Instant {
	return DaysBackFrom(instant.FromTime(now()), count)
}

// Tomorrow returns the midnight (UTC) starting the day after now.
func Tomorrow(now Clock) instant.Instant {
	return NextDay(instant.FromTime(now()))
}

// roundUp rounds n up to a multiple of m, toward positive infinity.
func roundUp(n, m int64) int64 {
	r := n % m
	if r == 0 {
		return n
	}
	if r < 0 {
		return n - r
	}
	return n + m - r
}
