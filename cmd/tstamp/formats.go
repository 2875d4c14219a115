package main

import (
	"fmt"

	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/internal/config"
	"github.com/leapmux/tstamp/timefmt"
	"github.com/leapmux/tstamp/timeserde"
	"github.com/leapmux/tstamp/timezone"
)

type decodeFunc func(timeserde.Deserializer) (instant.Instant, error)

type encodeFunc func(instant.Instant, timeserde.Serializer) error

func decoderFor(cfg *config.Config) decodeFunc {
	switch cfg.InputFormat {
	case "date":
		return timeserde.FromDateStr
	case "secs":
		return timeserde.FromSecs
	case "millis":
		return timeserde.FromMillis
	case "millis-tz":
		zone := cfg.FixedZone()
		return func(d timeserde.Deserializer) (instant.Instant, error) {
			return timeserde.FromMillisInTZ(d, zone)
		}
	case "millis-new-york":
		return func(d timeserde.Deserializer) (instant.Instant, error) {
			return timeserde.FromMillisInNamedZone(d, timezone.NewYork)
		}
	default:
		return timeserde.FromStr
	}
}

func encoderFor(format string) encodeFunc {
	switch format {
	case "rfc3339-nanos":
		return timeserde.ToRFC3339Nanos
	case "secs":
		return timeserde.ToSecs
	case "millis":
		return timeserde.ToMillis
	case "millis-new-york":
		return func(i instant.Instant, s timeserde.Serializer) error {
			return timeserde.ToMillisInNamedZone(i, timezone.NewYork, s)
		}
	default:
		return timeserde.ToRFC3339
	}
}

func encodeText(encode encodeFunc, i instant.Instant) (string, error) {
	var s timeserde.TextSerializer
	if err := encode(i, &s); err != nil {
		return "", err
	}
	return s.String(), nil
}

// parseAny accepts a full timestamp or, failing that, a bare date.
func parseAny(text string) (instant.Instant, error) {
	if i, ok := timefmt.ParseTimestamp(text); ok {
		return i, nil
	}
	if i, ok := timefmt.ParseDate(text); ok {
		return i, nil
	}
	return instant.Instant{}, fmt.Errorf("parse %q: %w", text, timefmt.ErrNoMatch)
}
