// file: internals/features/attendance/availability/model/availability_record_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

func TestRecordRoundTrip(t *testing.T) {
	start, err := dates.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	end, err := dates.ParseTimeOfDay("11:30")
	require.NoError(t, err)

	av := engine.EffectiveAvailability{
		Status:      engine.StatusFull,
		IsAvailable: true,
		Source:      engine.SourceTeamRotation,
		UnavailableBlocks: []engine.UnavailableBlock{
			{Start: &start, End: &end, Reason: "medical", Status: "approved"},
		},
	}

	row, err := FromEngine(uuid.New(), uuid.New(), dates.DayKey("2026-03-10"), av)
	require.NoError(t, err)
	assert.Equal(t, "full", row.AvailabilityRecordStatus)
	assert.True(t, row.AvailabilityRecordAvailable)
	assert.NotEmpty(t, row.AvailabilityRecordBlocks)

	got, err := row.ToEngine()
	require.NoError(t, err)
	assert.Equal(t, av.Status, got.Status)
	assert.Equal(t, av.Source, got.Source)
	require.Len(t, got.UnavailableBlocks, 1)
	assert.Equal(t, "medical", got.UnavailableBlocks[0].Reason)
	assert.Equal(t, 540, got.UnavailableBlocks[0].Start.MinuteOfDay())
}

func TestRecordRoundTripNoBlocks(t *testing.T) {
	av := engine.EffectiveAvailability{
		Status:      engine.StatusHome,
		IsAvailable: false,
		Source:      engine.SourcePersonalRotation,
	}

	row, err := FromEngine(uuid.New(), uuid.New(), dates.DayKey("2026-03-11"), av)
	require.NoError(t, err)
	assert.Empty(t, row.AvailabilityRecordBlocks)

	got, err := row.ToEngine()
	require.NoError(t, err)
	assert.Equal(t, av, got)
}
