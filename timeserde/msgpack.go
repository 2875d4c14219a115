package timeserde

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// MsgpackDeserializer reads the next value from a MessagePack stream.
type MsgpackDeserializer struct {
	dec *msgpack.Decoder
}

// NewMsgpackDeserializer reads from dec.
func NewMsgpackDeserializer(dec *msgpack.Decoder) *MsgpackDeserializer {
	return &MsgpackDeserializer{dec: dec}
}

func (d *MsgpackDeserializer) DecodeString() (string, error) {
	code, err := d.dec.PeekCode()
	if err != nil {
		return "", err
	}
	if !msgpcode.IsString(code) {
		return "", &TypeError{Got: describeMsgpack(code), Expected: "a string"}
	}
	return d.dec.DecodeString()
}

func (d *MsgpackDeserializer) DecodeUint64() (uint64, error) {
	code, err := d.dec.PeekCode()
	if err != nil {
		return 0, err
	}
	switch {
	case code <= msgpcode.PosFixedNumHigh, code >= msgpcode.Uint8 && code <= msgpcode.Uint64:
		return d.dec.DecodeUint64()
	case msgpcode.IsFixedNum(code), code >= msgpcode.Int8 && code <= msgpcode.Int64:
		n, err := d.dec.DecodeInt64()
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, &ValueError{Kind: KindInteger, Input: strconv.FormatInt(n, 10), Expected: "a non-negative integer"}
		}
		return uint64(n), nil
	}
	return 0, &TypeError{Got: describeMsgpack(code), Expected: "a non-negative integer"}
}

func (d *MsgpackDeserializer) DecodeNil() (bool, error) {
	code, err := d.dec.PeekCode()
	if err != nil {
		return false, err
	}
	if code != msgpcode.Nil {
		return false, nil
	}
	return true, d.dec.DecodeNil()
}

func describeMsgpack(code byte) string {
	switch {
	case code == msgpcode.Nil:
		return "nil"
	case code == msgpcode.True, code == msgpcode.False:
		return "boolean"
	case code == msgpcode.Float, code == msgpcode.Double:
		return "floating point"
	case msgpcode.IsString(code):
		return "string"
	case msgpcode.IsBin(code):
		return "binary"
	case msgpcode.IsFixedMap(code), code == msgpcode.Map16, code == msgpcode.Map32:
		return "map"
	case msgpcode.IsFixedArray(code), code == msgpcode.Array16, code == msgpcode.Array32:
		return "array"
	}
	return fmt.Sprintf("MessagePack code %#x", code)
}

// MsgpackSerializer writes to a MessagePack stream.
type MsgpackSerializer struct {
	enc *msgpack.Encoder
}

// NewMsgpackSerializer writes to enc.
func NewMsgpackSerializer(enc *msgpack.Encoder) *MsgpackSerializer {
	return &MsgpackSerializer{enc: enc}
}

func (s *MsgpackSerializer) EncodeString(v string) error { return s.enc.EncodeString(v) }
func (s *MsgpackSerializer) EncodeUint64(n uint64) error { return s.enc.EncodeUint(n) }
func (s *MsgpackSerializer) EncodeNil() error            { return s.enc.EncodeNil() }

var (
	_ msgpack.CustomEncoder = Field[Timestamp]{}
	_ msgpack.CustomDecoder = (*Field[Timestamp])(nil)
	_ msgpack.CustomEncoder = Optional[Timestamp]{}
	_ msgpack.CustomDecoder = (*Optional[Timestamp])(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (f Field[A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return f.encode(NewMsgpackSerializer(enc))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (f *Field[A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return f.decode(NewMsgpackDeserializer(dec))
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o Optional[A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return o.encode(NewMsgpackSerializer(enc))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (o *Optional[A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return o.decode(NewMsgpackDeserializer(dec))
}
