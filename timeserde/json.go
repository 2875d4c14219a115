package timeserde

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// JSONDeserializer reads one JSON value.
type JSONDeserializer struct {
	value gjson.Result
}

// NewJSONDeserializer parses data, which must hold exactly one JSON value.
func NewJSONDeserializer(data []byte) *JSONDeserializer {
	return &JSONDeserializer{value: gjson.ParseBytes(data)}
}

func (d *JSONDeserializer) DecodeString() (string, error) {
	if d.value.Type != gjson.String {
		return "", &TypeError{Got: describeJSON(d.value), Expected: "a string"}
	}
	return d.value.Str, nil
}

func (d *JSONDeserializer) DecodeUint64() (uint64, error) {
	if d.value.Type != gjson.Number {
		return 0, &TypeError{Got: describeJSON(d.value), Expected: "a non-negative integer"}
	}
	raw := d.value.Raw
	if strings.ContainsAny(raw, ".eE") {
		return 0, &TypeError{Got: "floating point " + raw, Expected: "a non-negative integer"}
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &ValueError{Kind: KindInteger, Input: raw, Expected: "a non-negative integer"}
	}
	return n, nil
}

func (d *JSONDeserializer) DecodeNil() (bool, error) {
	return d.value.Type == gjson.Null, nil
}

func describeJSON(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return "string " + strconv.Quote(r.Str)
	case gjson.Number:
		return "number " + r.Raw
	case gjson.True, gjson.False:
		return "boolean " + r.Raw
	case gjson.Null:
		return "null"
	}
	if r.IsArray() {
		return "array"
	}
	if r.IsObject() {
		return "object"
	}
	return "empty input"
}

// JSONSerializer collects one encoded JSON value.
type JSONSerializer struct {
	out []byte
}

// Bytes returns the encoded value.
func (s *JSONSerializer) Bytes() []byte { return s.out }

func (s *JSONSerializer) EncodeString(v string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.out = b
	return nil
}

func (s *JSONSerializer) EncodeUint64(n uint64) error {
	s.out = strconv.AppendUint(s.out[:0], n, 10)
	return nil
}

func (s *JSONSerializer) EncodeNil() error {
	s.out = append(s.out[:0], "null"...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Field[A]) MarshalJSON() ([]byte, error) {
	var s JSONSerializer
	if err := f.encode(&s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[A]) UnmarshalJSON(data []byte) error {
	return f.decode(NewJSONDeserializer(data))
}

// MarshalJSON implements json.Marshaler.
func (o Optional[A]) MarshalJSON() ([]byte, error) {
	var s JSONSerializer
	if err := o.encode(&s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[A]) UnmarshalJSON(data []byte) error {
	return o.decode(NewJSONDeserializer(data))
}
