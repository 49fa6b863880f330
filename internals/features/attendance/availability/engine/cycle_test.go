package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

func TestClassifyCycleDayBoundaries(t *testing.T) {
	sched := RotationSchedule{
		DaysOnBase:  11,
		DaysAtHome:  3,
		CycleLength: 14,
		StartDate:   dates.DayKey("2026-01-01"),
	}

	cases := []struct {
		day  string
		want CycleDay
	}{
		{"2026-01-01", CycleArrival},
		{"2026-01-02", CycleFull},
		{"2026-01-05", CycleFull},
		{"2026-01-10", CycleFull},
		{"2026-01-11", CycleDeparture},
		{"2026-01-12", CycleHome},
		{"2026-01-14", CycleHome},
		{"2026-01-15", CycleArrival}, // cycle restarts 14 days after start
		{"2026-01-25", CycleDeparture},
	}
	for _, tc := range cases {
		t.Run(tc.day, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyCycleDay(dates.DayKey(tc.day), sched))
		})
	}
}

func TestClassifyCycleDayBeforeStart(t *testing.T) {
	sched := RotationSchedule{
		DaysOnBase:  11,
		DaysAtHome:  3,
		CycleLength: 14,
		StartDate:   dates.DayKey("2026-01-01"),
	}

	// the cycle is treated as if it had always been running
	assert.Equal(t, CycleHome, ClassifyCycleDay(dates.DayKey("2025-12-31"), sched))    // offset 13
	assert.Equal(t, CycleDeparture, ClassifyCycleDay(dates.DayKey("2025-12-28"), sched)) // offset 10
	assert.Equal(t, CycleArrival, ClassifyCycleDay(dates.DayKey("2025-12-18"), sched))  // offset 0
}

func TestClassifyCycleDayFullyResident(t *testing.T) {
	sched := RotationSchedule{
		DaysOnBase:  7,
		DaysAtHome:  0,
		CycleLength: 7,
		StartDate:   dates.DayKey("2026-03-01"),
	}

	assert.Equal(t, CycleArrival, ClassifyCycleDay(dates.DayKey("2026-03-08"), sched))
	// no departure or home day exists in a fully-resident cycle
	for i := 1; i < 7; i++ {
		day := dates.DayKey("2026-03-01").AddDays(i)
		assert.Equal(t, CycleFull, ClassifyCycleDay(day, sched), "day %s", day)
	}
}

func TestRotationScheduleUsable(t *testing.T) {
	assert.False(t, RotationSchedule{CycleLength: 0, StartDate: dates.DayKey("2026-01-01")}.Usable())
	assert.False(t, RotationSchedule{CycleLength: 14, StartDate: dates.DayKey("not-a-date")}.Usable())
	assert.True(t, RotationSchedule{CycleLength: 14, StartDate: dates.DayKey("2026-01-01")}.Usable())
}
