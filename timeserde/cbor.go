package timeserde

import (
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// CBOR major types and simple values inspected before decoding.
const (
	cborMajorUint   = 0
	cborMajorNegInt = 1
	cborMajorText   = 3
	cborNull        = 0xf6
	cborUndefined   = 0xf7
)

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("timeserde: CBOR encoder initialization failed: " + err.Error())
	}
	cborDecMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("timeserde: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBORDeserializer reads one encoded CBOR data item.
type CBORDeserializer struct {
	data []byte
}

// NewCBORDeserializer wraps one encoded data item.
func NewCBORDeserializer(data []byte) *CBORDeserializer {
	return &CBORDeserializer{data: data}
}

func (d *CBORDeserializer) major() int {
	if len(d.data) == 0 {
		return -1
	}
	return int(d.data[0] >> 5)
}

func (d *CBORDeserializer) DecodeString() (string, error) {
	if d.major() != cborMajorText {
		return "", &TypeError{Got: d.describe(), Expected: "a string"}
	}
	var s string
	if err := cborDecMode.Unmarshal(d.data, &s); err != nil {
		return "", fmt.Errorf("decode CBOR text string: %w", err)
	}
	return s, nil
}

func (d *CBORDeserializer) DecodeUint64() (uint64, error) {
	switch d.major() {
	case cborMajorUint:
		var n uint64
		if err := cborDecMode.Unmarshal(d.data, &n); err != nil {
			return 0, fmt.Errorf("decode CBOR integer: %w", err)
		}
		return n, nil
	case cborMajorNegInt:
		return 0, &ValueError{Kind: KindInteger, Input: d.describe(), Expected: "a non-negative integer"}
	}
	return 0, &TypeError{Got: d.describe(), Expected: "a non-negative integer"}
}

func (d *CBORDeserializer) DecodeNil() (bool, error) {
	return len(d.data) == 1 && (d.data[0] == cborNull || d.data[0] == cborUndefined), nil
}

func (d *CBORDeserializer) describe() string {
	if len(d.data) == 0 {
		return "empty input"
	}
	if d.major() == cborMajorNegInt {
		var n int64
		if err := cborDecMode.Unmarshal(d.data, &n); err == nil {
			return strconv.FormatInt(n, 10)
		}
	}
	diag, err := cbor.Diagnose(d.data)
	if err != nil {
		return "malformed CBOR"
	}
	return "CBOR " + diag
}

// CBORSerializer collects one encoded CBOR data item.
type CBORSerializer struct {
	out []byte
}

// Bytes returns the encoded data item.
func (s *CBORSerializer) Bytes() []byte { return s.out }

func (s *CBORSerializer) EncodeString(v string) error {
	b, err := cborEncMode.Marshal(v)
	if err != nil {
		return err
	}
	s.out = b
	return nil
}

func (s *CBORSerializer) EncodeUint64(n uint64) error {
	b, err := cborEncMode.Marshal(n)
	if err != nil {
		return err
	}
	s.out = b
	return nil
}

func (s *CBORSerializer) EncodeNil() error {
	s.out = []byte{cborNull}
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (f Field[A]) MarshalCBOR() ([]byte, error) {
	var s CBORSerializer
	if err := f.encode(&s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (f *Field[A]) UnmarshalCBOR(data []byte) error {
	return f.decode(NewCBORDeserializer(data))
}

// MarshalCBOR implements cbor.Marshaler.
func (o Optional[A]) MarshalCBOR() ([]byte, error) {
	var s CBORSerializer
	if err := o.encode(&s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (o *Optional[A]) UnmarshalCBOR(data []byte) error {
	return o.decode(NewCBORDeserializer(data))
}
