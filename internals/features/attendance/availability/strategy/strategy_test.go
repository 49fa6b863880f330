package strategy

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

type stubLookup struct {
	rec   *engine.EffectiveAvailability
	err   error
	calls int
}

func (s *stubLookup) Find(uuid.UUID, dates.DayKey) (*engine.EffectiveAvailability, error) {
	s.calls++
	return s.rec, s.err
}

func TestForVersion(t *testing.T) {
	assert.IsType(t, OnDemand{}, ForVersion("on_demand", nil))
	assert.IsType(t, OnDemand{}, ForVersion("", nil))
	assert.IsType(t, OnDemand{}, ForVersion("something_else", nil))
	assert.IsType(t, Precomputed{}, ForVersion("precomputed", nil))
	assert.IsType(t, Precomputed{}, ForVersion("  Precomputed ", nil))
}

func TestOnDemandMatchesEngine(t *testing.T) {
	person := engine.Person{ID: uuid.New(), TeamID: uuid.New()}
	day := dates.DayKey("2026-01-05")
	rotations := []engine.RotationSchedule{{
		TeamID:      person.TeamID,
		DaysOnBase:  11,
		DaysAtHome:  3,
		CycleLength: 14,
		StartDate:   dates.DayKey("2026-01-01"),
	}}

	got, err := OnDemand{}.Resolve(person, day, rotations, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, engine.Resolve(person, day, rotations, nil, nil), got)
}

func TestPrecomputedReadsRecord(t *testing.T) {
	rec := &engine.EffectiveAvailability{
		Status:      engine.StatusHome,
		IsAvailable: false,
		Source:      engine.SourceAbsence,
	}
	lookup := &stubLookup{rec: rec}
	s := Precomputed{Records: lookup}

	got, err := s.Resolve(engine.Person{ID: uuid.New()}, dates.DayKey("2026-01-05"), nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, *rec, got)
	assert.Equal(t, 1, lookup.calls)
}

func TestPrecomputedFallsBackWhenNoRecord(t *testing.T) {
	lookup := &stubLookup{}
	s := Precomputed{Records: lookup}
	person := engine.Person{ID: uuid.New()}

	got, err := s.Resolve(person, dates.DayKey("2026-01-05"), nil, nil, nil)
	require.NoError(t, err)
	// no record, no rules: the on-demand default
	assert.Equal(t, engine.StatusFull, got.Status)
	assert.Equal(t, engine.SourceDefault, got.Source)
	assert.Equal(t, 1, lookup.calls)
}

func TestPrecomputedPropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	s := Precomputed{Records: &stubLookup{err: boom}}

	_, err := s.Resolve(engine.Person{ID: uuid.New()}, dates.DayKey("2026-01-05"), nil, nil, nil)
	assert.ErrorIs(t, err, boom)
}
