// Package timeserde bridges instants and the scalar values of structured
// data formats.
//
// The adapter functions (FromStr, ToRFC3339, FromMillis, ...) are written
// against two small capabilities, Deserializer and Serializer, which every
// supported format implements over its native values: JSON (gjson and
// goccy/go-json), YAML (yaml.v3), CBOR (fxamacker/cbor) and MessagePack
// (vmihailenco/msgpack).
//
// Record types select an encoding per field with Field and Optional:
//
//	type Order struct {
//		Placed   timeserde.Field[timeserde.Secs]         `json:"placed"`
//		Shipped  timeserde.Optional[timeserde.Timestamp] `json:"shipped"`
//		Recorded timeserde.Field[timeserde.MillisInEST]  `json:"recorded"`
//	}
//
// Decode failures are returned as *ValueError or *TypeError through the
// surrounding Unmarshal call whenever the format hands the value to Field.
// JSON and CBOR do so for null too, failing with "invalid type: null".
// yaml.v3 and msgpack/v5 consume null before Field sees it, and a missing
// key is never seen by any format; either way the Field is left unset.
// Check required fields after decoding:
//
//	if err := timeserde.Require("placed", o.Placed); err != nil {
//		return err
//	}
package timeserde
