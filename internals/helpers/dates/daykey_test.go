package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayKey(t *testing.T) {
	d, err := ParseDayKey("2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, DayKey("2026-01-15"), d)

	_, err = ParseDayKey("15/01/2026")
	assert.Error(t, err)

	_, err = ParseDayKey("2026-02-30")
	assert.Error(t, err)
}

func TestDayKeyDaysSince(t *testing.T) {
	a := DayKey("2026-01-01")
	assert.Equal(t, 0, a.DaysSince(a))
	assert.Equal(t, 14, DayKey("2026-01-15").DaysSince(a))
	assert.Equal(t, -5, DayKey("2025-12-27").DaysSince(a))
	// across a month boundary
	assert.Equal(t, 31, DayKey("2026-02-01").DaysSince(a))
}

func TestDayKeyAddDays(t *testing.T) {
	a := DayKey("2026-01-30")
	assert.Equal(t, DayKey("2026-02-02"), a.AddDays(3))
	assert.Equal(t, DayKey("2025-12-31"), a.AddDays(-30))
}

func TestDayKeyOrdering(t *testing.T) {
	assert.True(t, DayKey("2026-01-01").Before(DayKey("2026-01-02")))
	assert.True(t, DayKey("2026-02-01").After(DayKey("2026-01-31")))
}

func TestDayKeyOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)
	// 23:30 local stays on the local calendar day
	tt := time.Date(2026, 3, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, DayKey("2026-03-10"), DayKeyOf(tt))
}

func TestFloorMod(t *testing.T) {
	assert.Equal(t, 0, FloorMod(0, 14))
	assert.Equal(t, 13, FloorMod(-1, 14))
	assert.Equal(t, 0, FloorMod(-14, 14))
	assert.Equal(t, 3, FloorMod(17, 14))
}

func TestTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, tod.MinuteOfDay())

	tod, err = ParseTimeOfDay("14:05:30")
	require.NoError(t, err)
	assert.Equal(t, 14*60+5, tod.MinuteOfDay())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	m, err := ParseMinuteOfDay("12:00")
	require.NoError(t, err)
	assert.Equal(t, 720, m)
}

func TestTimeOfDayValue(t *testing.T) {
	tod, err := ParseTimeOfDay("07:45")
	require.NoError(t, err)
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:45:00", v)

	var zero TimeOfDay
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestTimeOfDayJSON(t *testing.T) {
	tod, err := ParseTimeOfDay("18:00")
	require.NoError(t, err)
	b, err := tod.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"18:00"`, string(b))

	var back TimeOfDay
	require.NoError(t, back.UnmarshalJSON([]byte(`"06:15"`)))
	assert.Equal(t, 6*60+15, back.MinuteOfDay())
}
