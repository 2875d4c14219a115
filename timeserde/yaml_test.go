package timeserde_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/internal/testutil"
	"github.com/leapmux/tstamp/timeserde"
)

type yamlRecord struct {
	Created  timeserde.Field[timeserde.Timestamp]    `yaml:"created"`
	Day      timeserde.Field[timeserde.Date]         `yaml:"day"`
	Seen     timeserde.Field[timeserde.Secs]         `yaml:"seen"`
	Recorded timeserde.Field[timeserde.MillisInEST]  `yaml:"recorded"`
	Closed   timeserde.Optional[timeserde.Timestamp] `yaml:"closed"`
	Updated  timeserde.Optional[timeserde.Timestamp] `yaml:"updated"`
	Local    timeserde.Field[timeserde.Millis]       `yaml:"local"`
}

const yamlDoc = `
created: 2018-04-01T08:00:00.000-04:00
day: 2019-08-01
seen: 1544129220
recorded: 1517461200000
closed: ~
updated: "2018-04-01T12:00:00Z"
local: 1517461200000
`

func TestYAML_Decode(t *testing.T) {
	var r yamlRecord
	require.NoError(t, yaml.Unmarshal([]byte(yamlDoc), &r))

	assert.Equal(t, instant.Unix(1522584000, 0), r.Created.Instant)
	assert.Equal(t, instant.Unix(1564617600, 0), r.Day.Instant)
	assert.Equal(t, instant.Unix(1544129220, 0), r.Seen.Instant)
	testutil.AssertInstant(t, "2018-02-01T00:00:00.000Z", r.Recorded.Instant)
	assert.False(t, r.Closed.Valid)
	require.True(t, r.Updated.Valid)
	assert.Equal(t, instant.Unix(1522584000, 0), r.Updated.Instant)
	assert.Equal(t, instant.Unix(1517461200, 0), r.Local.Instant)
}

func TestYAML_Encode(t *testing.T) {
	var r yamlRecord
	require.NoError(t, yaml.Unmarshal([]byte(yamlDoc), &r))

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2018-12-06T20:47:00.000Z")
	assert.Contains(t, string(out), "2019-08-01T00:00:00.000Z")
	assert.Contains(t, string(out), "closed: null")
	assert.Contains(t, string(out), "local: 1517461200000")
}

type yamlSymmetric struct {
	Created timeserde.Field[timeserde.TimestampNanos] `yaml:"created"`
	Local   timeserde.Field[timeserde.Millis]         `yaml:"local"`
	Closed  timeserde.Optional[timeserde.Timestamp]   `yaml:"closed"`
	Updated timeserde.Optional[timeserde.Timestamp]   `yaml:"updated"`
}

func TestYAML_RoundTrip(t *testing.T) {
	r := yamlSymmetric{
		Created: timeserde.NewField[timeserde.TimestampNanos](instant.Unix(1522584000, 123_456_789)),
		Local:   timeserde.NewField[timeserde.Millis](instant.Unix(1517461200, 5_000_000)),
		Updated: timeserde.Some[timeserde.Timestamp](instant.Unix(1522584000, 0)),
	}

	out, err := yaml.Marshal(r)
	require.NoError(t, err)

	var again yamlSymmetric
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, r, again)
}

func TestYAML_Errors(t *testing.T) {
	var r yamlRecord
	err := yaml.Unmarshal([]byte("created: not-a-date\n"), &r)
	assert.ErrorContains(t, err, `invalid value: string "not-a-date", expected a time stamp string`)

	err = yaml.Unmarshal([]byte("seen: soon\n"), &r)
	assert.ErrorContains(t, err, "invalid type: str soon, expected a non-negative integer")

	err = yaml.Unmarshal([]byte("seen: -3\n"), &r)
	assert.ErrorContains(t, err, "invalid value: integer -3")

	err = yaml.Unmarshal([]byte("created: [1, 2]\n"), &r)
	assert.ErrorContains(t, err, "invalid type: sequence, expected a string")
}

func TestYAMLDeserializer_DecodeNil(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("~"), &node))
	isNil, err := timeserde.NewYAMLDeserializer(node.Content[0]).DecodeNil()
	require.NoError(t, err)
	assert.True(t, isNil)
}
