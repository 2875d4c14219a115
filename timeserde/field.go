package timeserde

import (
	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/timezone"
)

// Adapter pairs a decoder with an encoder for one wire encoding.
// Implementations are stateless struct{} types so they can parameterize
// Field and Optional.
type Adapter interface {
	Decode(d Deserializer) (instant.Instant, error)
	Encode(i instant.Instant, s Serializer) error
}

// Timestamp is an RFC3339 string, written with millisecond precision.
type Timestamp struct{}

func (Timestamp) Decode(d Deserializer) (instant.Instant, error) { return FromStr(d) }
func (Timestamp) Encode(i instant.Instant, s Serializer) error  { return ToRFC3339(i, s) }

// TimestampNanos is an RFC3339 string, written with nanosecond precision.
type TimestampNanos struct{}

func (TimestampNanos) Decode(d Deserializer) (instant.Instant, error) { return FromStr(d) }
func (TimestampNanos) Encode(i instant.Instant, s Serializer) error  { return ToRFC3339Nanos(i, s) }

// Date reads a YYYY-MM-DD string. There is no date-only encoder; values are
// written as Timestamp.
type Date struct{}

func (Date) Decode(d Deserializer) (instant.Instant, error) { return FromDateStr(d) }
func (Date) Encode(i instant.Instant, s Serializer) error  { return ToRFC3339(i, s) }

// Secs reads whole seconds since the epoch and writes a Timestamp.
type Secs struct{}

func (Secs) Decode(d Deserializer) (instant.Instant, error) { return FromSecs(d) }
func (Secs) Encode(i instant.Instant, s Serializer) error  { return ToRFC3339(i, s) }

// Millis reads and writes milliseconds since the epoch.
type Millis struct{}

func (Millis) Decode(d Deserializer) (instant.Instant, error) { return FromMillis(d) }
func (Millis) Encode(i instant.Instant, s Serializer) error  { return ToMillis(i, s) }

// MillisAsTimestamp reads milliseconds since the epoch and writes a
// Timestamp.
type MillisAsTimestamp struct{}

func (MillisAsTimestamp) Decode(d Deserializer) (instant.Instant, error) { return FromMillis(d) }
func (MillisAsTimestamp) Encode(i instant.Instant, s Serializer) error  { return ToRFC3339(i, s) }

// MillisInUTC reads milliseconds recorded in UTC and writes a Timestamp.
type MillisInUTC struct{}

func (MillisInUTC) Decode(d Deserializer) (instant.Instant, error) {
	return FromMillisInTZ(d, timezone.UTC)
}
func (MillisInUTC) Encode(i instant.Instant, s Serializer) error { return ToRFC3339(i, s) }

// MillisInEST reads milliseconds recorded in EST and writes a Timestamp.
type MillisInEST struct{}

func (MillisInEST) Decode(d Deserializer) (instant.Instant, error) {
	return FromMillisInTZ(d, timezone.EST)
}
func (MillisInEST) Encode(i instant.Instant, s Serializer) error { return ToRFC3339(i, s) }

// MillisInNewYork reads and writes America/New_York wall-clock
// milliseconds; see FromMillisInNamedZone.
type MillisInNewYork struct{}

func (MillisInNewYork) Decode(d Deserializer) (instant.Instant, error) {
	return FromMillisInNamedZone(d, timezone.NewYork)
}
func (MillisInNewYork) Encode(i instant.Instant, s Serializer) error {
	return ToMillisInNamedZone(i, timezone.NewYork, s)
}

// Field is an instant that (de)serializes with the encoding A.
//
// yaml.v3 and msgpack/v5 handle null themselves without calling the
// decode hook, and no format calls it for a missing key. Such a Field
// stays at the zero value and is not Present; use Require to reject it.
type Field[A Adapter] struct {
	instant.Instant
	set bool
}

// NewField wraps i.
func NewField[A Adapter](i instant.Instant) Field[A] {
	return Field[A]{Instant: i, set: true}
}

// Present reports whether f was built with NewField or decoded from a
// value.
func (f Field[A]) Present() bool { return f.set }

// Require returns a *MissingError naming field when f is not Present.
func Require(field string, f interface{ Present() bool }) error {
	if f.Present() {
		return nil
	}
	return &MissingError{Field: field}
}

func (f Field[A]) encode(s Serializer) error {
	var a A
	return a.Encode(f.Instant, s)
}

func (f *Field[A]) decode(d Deserializer) error {
	var a A
	i, err := a.Decode(d)
	if err != nil {
		return err
	}
	f.Instant = i
	f.set = true
	return nil
}

// Optional is an instant that may be absent. Null and missing fields leave
// Valid false; an invalid Optional is written as null.
type Optional[A Adapter] struct {
	Instant instant.Instant
	Valid   bool
}

// Some returns a valid Optional holding i.
func Some[A Adapter](i instant.Instant) Optional[A] {
	return Optional[A]{Instant: i, Valid: true}
}

// Ptr returns the instant, or nil when o is not valid.
func (o Optional[A]) Ptr() *instant.Instant {
	if !o.Valid {
		return nil
	}
	i := o.Instant
	return &i
}

func (o Optional[A]) encode(s Serializer) error {
	if !o.Valid {
		return s.EncodeNil()
	}
	var a A
	return a.Encode(o.Instant, s)
}

func (o *Optional[A]) decode(d Deserializer) error {
	isNil, err := d.DecodeNil()
	if err != nil {
		return err
	}
	if isNil {
		*o = Optional[A]{}
		return nil
	}
	var a A
	i, err := a.Decode(d)
	if err != nil {
		return err
	}
	*o = Optional[A]{Instant: i, Valid: true}
	return nil
}
