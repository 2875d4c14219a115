package timeserde

import (
	"math"
	"strconv"

	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/timefmt"
	"github.com/leapmux/tstamp/timezone"
)

// Deserializer yields the scalar values of one wire field.
type Deserializer interface {
	// DecodeString reads a string, failing with *TypeError on any other
	// shape.
	DecodeString() (string, error)
	// DecodeUint64 reads a non-negative integer. Negative integers fail
	// with *ValueError, other shapes with *TypeError.
	DecodeUint64() (uint64, error)
	// DecodeNil reports whether the value is null, consuming it if so.
	DecodeNil() (bool, error)
}

// Serializer writes the scalar value of one wire field.
type Serializer interface {
	EncodeString(s string) error
	EncodeUint64(n uint64) error
	EncodeNil() error
}

// FromStr decodes an RFC3339 timestamp string.
func FromStr(d Deserializer) (instant.Instant, error) {
	s, err := d.DecodeString()
	if err != nil {
		return instant.Instant{}, err
	}
	i, ok := timefmt.ParseTimestamp(s)
	if !ok {
		return instant.Instant{}, invalidString(s, "a time stamp string")
	}
	return i, nil
}

// OptionalFromStr decodes an RFC3339 timestamp string or null. Null
// yields a nil instant.
func OptionalFromStr(d Deserializer) (*instant.Instant, error) {
	isNil, err := d.DecodeNil()
	if err != nil || isNil {
		return nil, err
	}
	s, err := d.DecodeString()
	if err != nil {
		return nil, err
	}
	i, ok := timefmt.ParseTimestamp(s)
	if !ok {
		return nil, invalidString(s, "an optional time stamp string")
	}
	return &i, nil
}

// FromDateStr decodes a YYYY-MM-DD date as midnight UTC.
func FromDateStr(d Deserializer) (instant.Instant, error) {
	s, err := d.DecodeString()
	if err != nil {
		return instant.Instant{}, err
	}
	i, ok := timefmt.ParseDate(s)
	if !ok {
		return instant.Instant{}, invalidString(s, "a date string")
	}
	return i, nil
}

// FromSecs decodes whole seconds since the epoch.
func FromSecs(d Deserializer) (instant.Instant, error) {
	n, err := decodeInt64(d, "seconds since the epoch")
	if err != nil {
		return instant.Instant{}, err
	}
	return instant.Unix(n, 0), nil
}

// FromMillis decodes milliseconds since the epoch.
func FromMillis(d Deserializer) (instant.Instant, error) {
	n, err := decodeInt64(d, "milliseconds since the epoch")
	if err != nil {
		return instant.Instant{}, err
	}
	return instant.UnixMilli(n), nil
}

// FromMillisInTZ decodes milliseconds since the epoch recorded in zone and
// corrects them to UTC.
func FromMillisInTZ(d Deserializer, zone timezone.Zone) (instant.Instant, error) {
	i, err := FromMillis(d)
	if err != nil {
		return instant.Instant{}, err
	}
	return zone.Add(i), nil
}

// FromMillisInNamedZone decodes milliseconds since the epoch and relabels
// the zone's wall-clock reading of that instant as UTC.
func FromMillisInNamedZone(d Deserializer, zone timezone.NamedZone) (instant.Instant, error) {
	i, err := FromMillis(d)
	if err != nil {
		return instant.Instant{}, err
	}
	return zone.ToLocalWall(i), nil
}

// ToRFC3339 encodes i as an RFC3339 string with millisecond precision.
func ToRFC3339(i instant.Instant, s Serializer) error {
	return s.EncodeString(timefmt.FormatRFC3339Millis(i))
}

// ToRFC3339Nanos encodes i as an RFC3339 string with nanosecond precision.
func ToRFC3339Nanos(i instant.Instant, s Serializer) error {
	return s.EncodeString(timefmt.FormatRFC3339Nanos(i))
}

// OptionalToRFC3339 encodes i like ToRFC3339, or null when i is nil.
func OptionalToRFC3339(i *instant.Instant, s Serializer) error {
	if i == nil {
		return s.EncodeNil()
	}
	return ToRFC3339(*i, s)
}

// ToMillis encodes i as milliseconds since the epoch. Instants before the
// epoch fail with *EncodeError.
func ToMillis(i instant.Instant, s Serializer) error {
	if i.BeforeEpoch() {
		return &EncodeError{Instant: i, Reason: "before the UNIX epoch"}
	}
	return s.EncodeUint64(uint64(i.UnixMilli()))
}

// ToMillisInNamedZone is the inverse of FromMillisInNamedZone: the UTC
// digits of i are read as wall-clock time in zone and the resulting
// instant is encoded as milliseconds.
func ToMillisInNamedZone(i instant.Instant, zone timezone.NamedZone, s Serializer) error {
	return ToMillis(zone.FromLocalWall(i), s)
}

func decodeInt64(d Deserializer, expected string) (int64, error) {
	n, err := d.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64 {
		return 0, &ValueError{Kind: KindInteger, Input: strconv.FormatUint(n, 10), Expected: expected}
	}
	return int64(n), nil
}

// ToSecs encodes i as whole seconds since the epoch, dropping the
// sub-second remainder. Instants before the epoch fail with *EncodeError.
func ToSecs(i instant.Instant, s Serializer) error {
	if i.BeforeEpoch() {
		return &EncodeError{Instant: i, Reason: "before the UNIX epoch"}
	}
	return s.EncodeUint64(uint64(i.Unix()))
}
