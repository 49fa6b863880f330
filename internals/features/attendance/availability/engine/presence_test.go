package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

func tod(t *testing.T, s string) *dates.TimeOfDay {
	t.Helper()
	v, err := dates.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &v
}

func minute(t *testing.T, s string) int {
	t.Helper()
	m, err := dates.ParseMinuteOfDay(s)
	require.NoError(t, err)
	return m
}

func TestIsPresentAtHomeAndUnavailable(t *testing.T) {
	for _, st := range []AvailabilityStatus{StatusHome, StatusUnavailable} {
		av := EffectiveAvailability{Status: st}
		assert.False(t, IsPresentAt(av, minute(t, "00:00")))
		assert.False(t, IsPresentAt(av, minute(t, "12:00")))
	}
}

func TestIsPresentAtArrival(t *testing.T) {
	av := EffectiveAvailability{
		Status:      StatusArrival,
		IsAvailable: true,
		StartHour:   tod(t, "10:00"),
	}
	assert.False(t, IsPresentAt(av, minute(t, "09:59")))
	assert.True(t, IsPresentAt(av, minute(t, "10:00")))
	assert.True(t, IsPresentAt(av, minute(t, "16:00")))

	// no explicit hour means full-day presence
	av.StartHour = nil
	assert.True(t, IsPresentAt(av, minute(t, "06:00")))
}

func TestIsPresentAtDeparture(t *testing.T) {
	av := EffectiveAvailability{
		Status:      StatusDeparture,
		IsAvailable: true,
		EndHour:     tod(t, "14:00"),
	}
	assert.True(t, IsPresentAt(av, minute(t, "13:59")))
	assert.False(t, IsPresentAt(av, minute(t, "14:00")))

	av.EndHour = nil
	assert.True(t, IsPresentAt(av, minute(t, "18:00")))
}

func TestIsPresentAtApprovedBlockExclusion(t *testing.T) {
	av := EffectiveAvailability{
		Status:      StatusFull,
		IsAvailable: true,
		UnavailableBlocks: []UnavailableBlock{{
			Start:  tod(t, "09:00"),
			End:    tod(t, "11:00"),
			Status: "approved",
		}},
	}
	assert.False(t, IsPresentAt(av, minute(t, "10:00")))
	assert.True(t, IsPresentAt(av, minute(t, "12:00")))
	// interval is half-open [start,end)
	assert.False(t, IsPresentAt(av, minute(t, "09:00")))
	assert.True(t, IsPresentAt(av, minute(t, "11:00")))
}

func TestIsPresentAtPendingBlockNonBinding(t *testing.T) {
	av := EffectiveAvailability{
		Status:      StatusFull,
		IsAvailable: true,
		UnavailableBlocks: []UnavailableBlock{{
			Start:  tod(t, "09:00"),
			End:    tod(t, "11:00"),
			Status: "pending",
		}},
	}
	assert.True(t, IsPresentAt(av, minute(t, "10:00")))
}

func TestIsPresentAtHourlyBlockageAlwaysEnforced(t *testing.T) {
	// hourly blockages carry no status and are always enforced
	av := EffectiveAvailability{
		Status:      StatusFull,
		IsAvailable: true,
		UnavailableBlocks: []UnavailableBlock{{
			Start: tod(t, "12:00"),
			End:   tod(t, "14:00"),
		}},
	}
	assert.False(t, IsPresentAt(av, minute(t, "12:30")))
	assert.True(t, IsPresentAt(av, minute(t, "14:00")))
}

func TestIsPresentAtFullDayBlock(t *testing.T) {
	// a block without hours (an absence entry) covers the whole day
	av := EffectiveAvailability{
		Status:      StatusFull,
		IsAvailable: true,
		UnavailableBlocks: []UnavailableBlock{{
			Status: "approved",
		}},
	}
	assert.False(t, IsPresentAt(av, minute(t, "08:00")))
	assert.False(t, IsPresentAt(av, minute(t, "20:00")))
}

func TestIsPresentAtBlockOnArrivalDay(t *testing.T) {
	av := EffectiveAvailability{
		Status:      StatusArrival,
		IsAvailable: true,
		StartHour:   tod(t, "10:00"),
		UnavailableBlocks: []UnavailableBlock{{
			Start: tod(t, "12:00"),
			End:   tod(t, "13:00"),
		}},
	}
	assert.True(t, IsPresentAt(av, minute(t, "11:00")))
	assert.False(t, IsPresentAt(av, minute(t, "12:30")))
}
