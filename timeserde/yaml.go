package timeserde

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLDeserializer reads one YAML node.
type YAMLDeserializer struct {
	node *yaml.Node
}

// NewYAMLDeserializer wraps node.
func NewYAMLDeserializer(node *yaml.Node) *YAMLDeserializer {
	return &YAMLDeserializer{node: node}
}

func (d *YAMLDeserializer) DecodeString() (string, error) {
	// Unquoted dates and timestamps resolve to !!timestamp; they are
	// still strings on the wire.
	switch d.node.ShortTag() {
	case "!!str", "!!timestamp":
		if d.node.Kind == yaml.ScalarNode {
			return d.node.Value, nil
		}
	}
	return "", &TypeError{Got: describeYAML(d.node), Expected: "a string"}
}

func (d *YAMLDeserializer) DecodeUint64() (uint64, error) {
	if d.node.Kind != yaml.ScalarNode || d.node.ShortTag() != "!!int" {
		return 0, &TypeError{Got: describeYAML(d.node), Expected: "a non-negative integer"}
	}
	var n uint64
	if err := d.node.Decode(&n); err != nil {
		return 0, &ValueError{Kind: KindInteger, Input: d.node.Value, Expected: "a non-negative integer"}
	}
	return n, nil
}

func (d *YAMLDeserializer) DecodeNil() (bool, error) {
	return d.node.Kind == yaml.ScalarNode && d.node.ShortTag() == "!!null", nil
}

func describeYAML(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		tag := strings.TrimPrefix(n.ShortTag(), "!!")
		if tag == "null" {
			return "null"
		}
		return tag + " " + n.Value
	}
	return "node"
}

// YAMLSerializer collects one value for yaml.Marshaler.
type YAMLSerializer struct {
	value interface{}
}

// Value returns the collected value.
func (s *YAMLSerializer) Value() interface{} { return s.value }

func (s *YAMLSerializer) EncodeString(v string) error {
	s.value = v
	return nil
}

func (s *YAMLSerializer) EncodeUint64(n uint64) error {
	s.value = n
	return nil
}

func (s *YAMLSerializer) EncodeNil() error {
	s.value = nil
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Field[A]) MarshalYAML() (interface{}, error) {
	var s YAMLSerializer
	if err := f.encode(&s); err != nil {
		return nil, err
	}
	return s.Value(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field[A]) UnmarshalYAML(node *yaml.Node) error {
	return f.decode(NewYAMLDeserializer(node))
}

// MarshalYAML implements yaml.Marshaler.
func (o Optional[A]) MarshalYAML() (interface{}, error) {
	var s YAMLSerializer
	if err := o.encode(&s); err != nil {
		return nil, err
	}
	return s.Value(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Optional[A]) UnmarshalYAML(node *yaml.Node) error {
	return o.decode(NewYAMLDeserializer(node))
}
