package timeserde_test

import (
	stdjson "encoding/json"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/internal/testutil"
	"github.com/leapmux/tstamp/timeserde"
)

type jsonTime struct {
	Time timeserde.Field[timeserde.Timestamp] `json:"time"`
}

type jsonOptional struct {
	Time timeserde.Optional[timeserde.Timestamp] `json:"time"`
}

type jsonDate struct {
	Date timeserde.Field[timeserde.Date] `json:"date"`
}

type jsonSecs struct {
	Time timeserde.Field[timeserde.Secs] `json:"time"`
}

type jsonMillis struct {
	Time timeserde.Field[timeserde.Millis] `json:"time"`
}

type jsonMillisEST struct {
	Time timeserde.Field[timeserde.MillisInEST] `json:"time"`
}

type jsonMillisNewYork struct {
	Time timeserde.Field[timeserde.MillisInNewYork] `json:"time"`
}

func TestJSON_Timestamp(t *testing.T) {
	for _, doc := range []string{
		`{"time": "2018-04-01T12:00:00Z"}`,
		`{"time": "2018-04-01T12:00:00.000Z"}`,
		`{"time": "2018-04-01T08:00:00.000-04:00"}`,
	} {
		var v jsonTime
		require.NoError(t, json.Unmarshal([]byte(doc), &v), doc)
		assert.Equal(t, instant.Unix(1522584000, 0), v.Time.Instant, doc)
	}
}

func TestJSON_TimestampEncode(t *testing.T) {
	v := jsonTime{Time: timeserde.NewField[timeserde.Timestamp](instant.Unix(1522584000, 50_000_000))}
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"2018-04-01T12:00:00.050Z"}`, string(out))
}

func TestJSON_InvalidTimestamp(t *testing.T) {
	var v jsonTime
	err := json.Unmarshal([]byte(`{"time": "not-a-date"}`), &v)
	assert.ErrorContains(t, err, `invalid value: string "not-a-date", expected a time stamp string`)
}

func TestJSON_Optional(t *testing.T) {
	var v jsonOptional
	require.NoError(t, json.Unmarshal([]byte(`{"time": null}`), &v))
	assert.False(t, v.Time.Valid)
	assert.Nil(t, v.Time.Ptr())

	v = jsonOptional{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &v))
	assert.False(t, v.Time.Valid)

	require.NoError(t, json.Unmarshal([]byte(`{"time": "2018-04-01T12:00:00Z"}`), &v))
	require.True(t, v.Time.Valid)
	assert.Equal(t, instant.Unix(1522584000, 0), *v.Time.Ptr())

	out, err := json.Marshal(jsonOptional{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":null}`, string(out))

	out, err = json.Marshal(jsonOptional{Time: timeserde.Some[timeserde.Timestamp](instant.Unix(1522584000, 0))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"2018-04-01T12:00:00.000Z"}`, string(out))
}

func TestJSON_Date(t *testing.T) {
	var v jsonDate
	require.NoError(t, json.Unmarshal([]byte(`{"date": "2019-08-01"}`), &v))
	assert.Equal(t, instant.Unix(1564617600, 0), v.Date.Instant)
}

func TestJSON_Secs(t *testing.T) {
	var v jsonSecs
	require.NoError(t, json.Unmarshal([]byte(`{"time": 1544129220}`), &v))
	assert.Equal(t, instant.Unix(1544129220, 0), v.Time.Instant)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"time":"2018-12-06T20:47:00.000Z"}`, string(out))
}

func TestJSON_Millis(t *testing.T) {
	var v jsonMillis
	require.NoError(t, json.Unmarshal([]byte(`{"time": 1517461200000}`), &v))
	assert.Equal(t, instant.Unix(1517461200, 0), v.Time.Instant)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"time":1517461200000}`, string(out))
}

func TestJSON_MillisBeforeEpoch(t *testing.T) {
	_, err := json.Marshal(jsonMillis{Time: timeserde.NewField[timeserde.Millis](instant.Unix(-10, 0))})
	assert.ErrorContains(t, err, "before the UNIX epoch")
}

func TestJSON_MillisInEST(t *testing.T) {
	var v jsonMillisEST
	require.NoError(t, json.Unmarshal([]byte(`{"time": 1517461200000}`), &v))
	testutil.AssertInstant(t, "2018-02-01T00:00:00.000Z", v.Time.Instant)
}

func TestJSON_MillisInNewYork(t *testing.T) {
	var v jsonMillisNewYork
	require.NoError(t, json.Unmarshal([]byte(`{"time": 1599537600000}`), &v))
	testutil.AssertInstant(t, "2020-09-08T00:00:00.000Z", v.Time.Instant)

	out, err := json.Marshal(v)
	require.NoError(t, err)

	var again jsonMillisNewYork
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, v.Time.Instant, again.Time.Instant)
}

func TestJSON_WrongType(t *testing.T) {
	var v jsonSecs
	err := json.Unmarshal([]byte(`{"time": "1544129220"}`), &v)
	assert.ErrorContains(t, err, `invalid type: string "1544129220", expected a non-negative integer`)
}

func TestJSON_StandardLibrary(t *testing.T) {
	var v jsonSecs
	require.NoError(t, stdjson.Unmarshal([]byte(`{"time": 1544129220}`), &v))
	assert.Equal(t, instant.Unix(1544129220, 0), v.Time.Instant)

	out, err := stdjson.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"time":"2018-12-06T20:47:00.000Z"}`, string(out))

	err = stdjson.Unmarshal([]byte(`{"time": -5}`), &v)
	var valueErr *timeserde.ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "-5", valueErr.Input)
}
