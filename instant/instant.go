// Package instant provides a zone-less point in time measured from the
// UNIX epoch.
//
// Unlike time.Time an Instant carries no location and no monotonic clock
// reading, so two Instants can be compared with ==.
package instant

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

const nanosPerSecond = int64(time.Second)

// Instant is a point in time expressed as whole seconds since
// 1970-01-01T00:00:00Z plus a nanosecond remainder in [0, 1e9).
//
// The zero value is the UNIX epoch.
type Instant struct {
	secs  int64
	nanos int32
}

// Epoch is 1970-01-01T00:00:00Z.
var Epoch = Instant{}

// Unix returns the Instant sec seconds and nsec nanoseconds after the
// epoch. nsec may be outside [0, 1e9) and is normalized into sec.
func Unix(sec, nsec int64) Instant {
	if nsec < 0 || nsec >= nanosPerSecond {
		sec += nsec / nanosPerSecond
		nsec %= nanosPerSecond
		if nsec < 0 {
			nsec += nanosPerSecond
			sec--
		}
	}
	return Instant{secs: sec, nanos: int32(nsec)}
}

// UnixMilli returns the Instant ms milliseconds after the epoch.
func UnixMilli(ms int64) Instant {
	return Unix(ms/1e3, (ms%1e3)*1e6)
}

// FromTime converts t to an Instant, dropping its location and any
// monotonic clock reading.
func FromTime(t time.Time) Instant {
	return Instant{secs: t.Unix(), nanos: int32(t.Nanosecond())}
}

// FromProto converts a protobuf Timestamp. A nil timestamp maps to the
// epoch, matching timestamppb's own AsTime.
func FromProto(ts *timestamppb.Timestamp) Instant {
	return Unix(ts.GetSeconds(), int64(ts.GetNanos()))
}

// Unix returns the whole seconds since the epoch.
func (i Instant) Unix() int64 { return i.secs }

// Nanos returns the sub-second remainder in nanoseconds.
func (i Instant) Nanos() int32 { return i.nanos }

// UnixMilli returns the milliseconds since the epoch, rounding toward
// negative infinity.
func (i Instant) UnixMilli() int64 {
	return i.secs*1e3 + int64(i.nanos)/1e6
}

// BeforeEpoch reports whether i lies before 1970-01-01T00:00:00Z.
func (i Instant) BeforeEpoch() bool { return i.secs < 0 }

// Time returns i as a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.secs, int64(i.nanos)).UTC()
}

// Proto returns i as a protobuf Timestamp.
func (i Instant) Proto() *timestamppb.Timestamp {
	return &timestamppb.Timestamp{Seconds: i.secs, Nanos: i.nanos}
}

// Add returns i+d.
func (i Instant) Add(d time.Duration) Instant {
	return Unix(i.secs+int64(d/time.Second), int64(i.nanos)+int64(d%time.Second))
}

// AddSeconds returns i shifted by n whole seconds.
func (i Instant) AddSeconds(n int64) Instant {
	return Instant{secs: i.secs + n, nanos: i.nanos}
}

// Sub returns i-u. The result saturates like time.Time.Sub.
func (i Instant) Sub(u Instant) time.Duration {
	return i.Time().Sub(u.Time())
}

// Truncate rounds i down to a multiple of d, where d divides one second
// (time.Millisecond, time.Microsecond, ...). d <= 0 or d >= time.Second
// truncates to whole seconds.
func (i Instant) Truncate(d time.Duration) Instant {
	if d <= 0 || d >= time.Second {
		return Instant{secs: i.secs}
	}
	return Instant{secs: i.secs, nanos: i.nanos - i.nanos%int32(d)}
}

// Compare returns -1, 0 or +1 as i is before, equal to or after u.
func (i Instant) Compare(u Instant) int {
	switch {
	case i.secs < u.secs:
		return -1
	case i.secs > u.secs:
		return 1
	case i.nanos < u.nanos:
		return -1
	case i.nanos > u.nanos:
		return 1
	}
	return 0
}

// Before reports whether i is before u.
func (i Instant) Before(u Instant) bool { return i.Compare(u) < 0 }

// After reports whether i is after u.
func (i Instant) After(u Instant) bool { return i.Compare(u) > 0 }

// String renders i as RFC3339 with nanosecond precision, for debugging.
func (i Instant) String() string {
	return i.Time().Format("2006-01-02T15:04:05.000000000Z")
}
