package daymath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leapmux/tstamp/daymath"
	"github.com/leapmux/tstamp/internal/testutil"
)

func TestNextDay(t *testing.T) {
	for _, tc := range []struct {
		now, want string
	}{
		{"2020-02-07T13:00:00Z", "2020-02-08T00:00:00Z"},
		{"2019-03-31T23:59:59Z", "2019-04-01T00:00:00Z"},
		{"2020-02-28T12:00:00Z", "2020-02-29T00:00:00Z"},
		{"1969-12-31T12:00:00Z", "1970-01-01T00:00:00Z"},
	} {
		got := daymath.NextDay(testutil.MustParse(t, tc.now))
		testutil.AssertInstant(t, tc.want, got, tc.now)
	}
}

func TestNextDay_ExactMidnightStays(t *testing.T) {
	midnight := testutil.MustParse(t, "2020-02-08T00:00:00Z")
	assert.Equal(t, midnight, daymath.NextDay(midnight))
}

func TestNextDay_DateIsMidnight(t *testing.T) {
	day := testutil.MustParseDate(t, "2019-08-01")
	assert.Equal(t, day, daymath.NextDay(day))
	testutil.AssertInstant(t, "2019-08-02T00:00:00Z", daymath.NextDay(day.AddSeconds(1)))
}

func TestDaysBackFrom_Date(t *testing.T) {
	testutil.AssertInstant(t, "2019-07-29T00:00:00Z",
		daymath.DaysBackFrom(testutil.MustParseDate(t, "2019-08-01"), 2))
}

func TestDaysBackFrom(t *testing.T) {
	testutil.AssertInstant(t, "2020-02-06T00:00:00Z",
		daymath.DaysBackFrom(testutil.MustParse(t, "2020-02-07T09:00:00Z"), 1))
	testutil.AssertInstant(t, "2020-01-28T00:00:00Z",
		daymath.DaysBackFrom(testutil.MustParse(t, "2020-02-02T23:59:59Z"), 5))
	testutil.AssertInstant(t, "2020-02-07T00:00:00Z",
		daymath.DaysBackFrom(testutil.MustParse(t, "2020-02-07T09:00:00Z"), 0))
}

func TestClockBased(t *testing.T) {
	now := func() time.Time { return time.Date(2020, 2, 7, 13, 0, 0, 0, time.UTC) }

	testutil.AssertInstant(t, "2020-02-08T00:00:00Z", daymath.Tomorrow(now))
	testutil.AssertInstant(t, "2020-02-04T00:00:00Z", daymath.DaysBack(now, 3))
}
