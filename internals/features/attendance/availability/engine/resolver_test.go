package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

var (
	testTeamID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testPersonID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func testPerson() Person {
	return Person{ID: testPersonID, TeamID: testTeamID}
}

// onBaseRotation marks every day as full for the team (fully resident), so
// absence/override layers can be exercised against a rotation that would
// otherwise keep the person on base.
func onBaseRotation() RotationSchedule {
	return RotationSchedule{
		TeamID:      testTeamID,
		DaysOnBase:  14,
		DaysAtHome:  0,
		CycleLength: 14,
		StartDate:   dates.DayKey("2025-12-02"),
	}
}

func mustTod(t *testing.T, s string) *dates.TimeOfDay {
	t.Helper()
	tod, err := dates.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &tod
}

func TestResolveDefault(t *testing.T) {
	got := Resolve(testPerson(), dates.DayKey("2026-01-05"), nil, nil, nil)

	assert.Equal(t, StatusFull, got.Status)
	assert.True(t, got.IsAvailable)
	assert.Equal(t, SourceDefault, got.Source)
	assert.Empty(t, got.UnavailableBlocks)
}

func TestResolveIdempotent(t *testing.T) {
	day := dates.DayKey("2026-01-05")
	rotations := []RotationSchedule{onBaseRotation()}
	absences := []Absence{{
		PersonID:  testPersonID,
		StartDate: dates.DayKey("2026-01-04"),
		EndDate:   dates.DayKey("2026-01-06"),
		Status:    AbsencePending,
	}}

	first := Resolve(testPerson(), day, rotations, absences, nil)
	second := Resolve(testPerson(), day, rotations, absences, nil)
	assert.Equal(t, first, second)
}

func TestResolveApprovedAbsenceBeatsRotation(t *testing.T) {
	day := dates.DayKey("2026-01-05")
	absences := []Absence{{
		PersonID:  testPersonID,
		StartDate: dates.DayKey("2026-01-05"),
		EndDate:   dates.DayKey("2026-01-07"),
		Status:    AbsenceApproved,
		Reason:    "medical",
	}}

	got := Resolve(testPerson(), day, []RotationSchedule{onBaseRotation()}, absences, nil)

	assert.Equal(t, StatusHome, got.Status)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, SourceAbsence, got.Source)
	require.Len(t, got.UnavailableBlocks, 1)
	assert.Equal(t, "approved", got.UnavailableBlocks[0].Status)
}

func TestResolveRejectedAbsenceDoesNotHideDay(t *testing.T) {
	day := dates.DayKey("2026-01-05")
	absences := []Absence{{
		PersonID:  testPersonID,
		StartDate: day,
		EndDate:   day,
		Status:    AbsenceRejected,
		Reason:    "family event",
	}}

	got := Resolve(testPerson(), day, nil, absences, nil)

	assert.Equal(t, StatusFull, got.Status)
	assert.True(t, got.IsAvailable)
	require.Len(t, got.UnavailableBlocks, 1)
	assert.Equal(t, "rejected", got.UnavailableBlocks[0].Status)
}

func TestResolveAbsenceRangeInclusive(t *testing.T) {
	absence := Absence{
		PersonID:  testPersonID,
		StartDate: dates.DayKey("2026-01-04"),
		EndDate:   dates.DayKey("2026-01-06"),
		Status:    AbsenceApproved,
	}

	for _, day := range []string{"2026-01-04", "2026-01-05", "2026-01-06"} {
		got := Resolve(testPerson(), dates.DayKey(day), nil, []Absence{absence}, nil)
		assert.Equal(t, SourceAbsence, got.Source, "day %s", day)
	}
	got := Resolve(testPerson(), dates.DayKey("2026-01-07"), nil, []Absence{absence}, nil)
	assert.Equal(t, SourceDefault, got.Source)
}

func TestResolveAbsenceWithBadDatesSkipped(t *testing.T) {
	absences := []Absence{{
		PersonID:  testPersonID,
		StartDate: dates.DayKey("05/01/2026"),
		EndDate:   dates.DayKey("2026-01-06"),
		Status:    AbsenceApproved,
	}}

	got := Resolve(testPerson(), dates.DayKey("2026-01-05"), nil, absences, nil)

	assert.Equal(t, StatusFull, got.Status)
	assert.True(t, got.IsAvailable)
	assert.Empty(t, got.UnavailableBlocks)
}

func TestResolvePersonalRotationOverride(t *testing.T) {
	p := testPerson()
	// 4 on / 4 off from 2026-01-01: offsets 4..7 are off; 2026-01-05 is offset 4.
	p.Rotation = &PersonalRotation{
		Active:    true,
		DaysOn:    4,
		DaysOff:   4,
		StartDate: dates.DayKey("2026-01-01"),
	}

	got := Resolve(p, dates.DayKey("2026-01-05"), []RotationSchedule{onBaseRotation()}, nil, nil)

	assert.Equal(t, StatusHome, got.Status)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, SourcePersonalRotation, got.Source)
}

func TestResolvePersonalRotationOnDayFallsThrough(t *testing.T) {
	p := testPerson()
	p.Rotation = &PersonalRotation{
		Active:    true,
		DaysOn:    4,
		DaysOff:   4,
		StartDate: dates.DayKey("2026-01-01"),
	}

	// offset 2 is an on day, so the team rotation still decides
	got := Resolve(p, dates.DayKey("2026-01-03"), []RotationSchedule{onBaseRotation()}, nil, nil)

	assert.Equal(t, StatusFull, got.Status)
	assert.Equal(t, SourceTeamRotation, got.Source)
}

func TestResolveInactivePersonalRotationIgnored(t *testing.T) {
	p := testPerson()
	p.Rotation = &PersonalRotation{
		Active:    false,
		DaysOn:    4,
		DaysOff:   4,
		StartDate: dates.DayKey("2026-01-01"),
	}

	got := Resolve(p, dates.DayKey("2026-01-05"), nil, nil, nil)
	assert.Equal(t, SourceDefault, got.Source)
	assert.True(t, got.IsAvailable)
}

func TestResolveAbsenceBeatsPersonalRotation(t *testing.T) {
	p := testPerson()
	p.Rotation = &PersonalRotation{
		Active:    true,
		DaysOn:    4,
		DaysOff:   4,
		StartDate: dates.DayKey("2026-01-01"),
	}
	absences := []Absence{{
		PersonID:  testPersonID,
		StartDate: dates.DayKey("2026-01-05"),
		EndDate:   dates.DayKey("2026-01-05"),
		Status:    AbsenceApproved,
	}}

	// both layers would restrict 2026-01-05; absence wins the tie
	got := Resolve(p, dates.DayKey("2026-01-05"), nil, absences, nil)
	assert.Equal(t, SourceAbsence, got.Source)
	assert.False(t, got.IsAvailable)
}

func TestResolveTeamRotationCarriesHours(t *testing.T) {
	sched := RotationSchedule{
		TeamID:        testTeamID,
		DaysOnBase:    11,
		DaysAtHome:    3,
		CycleLength:   14,
		StartDate:     dates.DayKey("2026-01-01"),
		ArrivalTime:   mustTod(t, "10:00"),
		DepartureTime: mustTod(t, "14:00"),
	}

	arr := Resolve(testPerson(), dates.DayKey("2026-01-15"), []RotationSchedule{sched}, nil, nil)
	assert.Equal(t, StatusArrival, arr.Status)
	assert.True(t, arr.IsAvailable)
	require.NotNil(t, arr.StartHour)
	assert.Equal(t, 600, arr.StartHour.MinuteOfDay())
	assert.Nil(t, arr.EndHour)

	dep := Resolve(testPerson(), dates.DayKey("2026-01-11"), []RotationSchedule{sched}, nil, nil)
	assert.Equal(t, StatusDeparture, dep.Status)
	require.NotNil(t, dep.EndHour)
	assert.Equal(t, 840, dep.EndHour.MinuteOfDay())

	home := Resolve(testPerson(), dates.DayKey("2026-01-12"), []RotationSchedule{sched}, nil, nil)
	assert.Equal(t, StatusHome, home.Status)
	assert.False(t, home.IsAvailable)
	assert.Equal(t, SourceTeamRotation, home.Source)
}

func TestResolveLastMatchingTeamScheduleWins(t *testing.T) {
	older := onBaseRotation()
	newer := RotationSchedule{
		TeamID:      testTeamID,
		DaysOnBase:  11,
		DaysAtHome:  3,
		CycleLength: 14,
		StartDate:   dates.DayKey("2026-01-01"),
	}

	// 2026-01-12 is home under the newer schedule, full under the older
	got := Resolve(testPerson(), dates.DayKey("2026-01-12"), []RotationSchedule{older, newer}, nil, nil)
	assert.Equal(t, StatusHome, got.Status)
}

func TestResolveOtherTeamsScheduleIgnored(t *testing.T) {
	other := onBaseRotation()
	other.TeamID = uuid.MustParse("33333333-3333-3333-3333-333333333333")

	got := Resolve(testPerson(), dates.DayKey("2026-01-05"), []RotationSchedule{other}, nil, nil)
	assert.Equal(t, SourceDefault, got.Source)
}

func TestResolveUnusableScheduleSkipped(t *testing.T) {
	broken := onBaseRotation()
	broken.CycleLength = 0

	got := Resolve(testPerson(), dates.DayKey("2026-01-05"), []RotationSchedule{broken}, nil, nil)
	assert.Equal(t, SourceDefault, got.Source)
	assert.True(t, got.IsAvailable)
}

func TestResolveHourlyBlockageKeepsDayStatus(t *testing.T) {
	blockages := []Blockage{{
		PersonID:  testPersonID,
		Date:      dates.DayKey("2026-01-05"),
		StartTime: *mustTod(t, "12:00"),
		EndTime:   *mustTod(t, "14:00"),
		Reason:    "dental",
	}}

	got := Resolve(testPerson(), dates.DayKey("2026-01-05"), nil, nil, blockages)

	assert.Equal(t, StatusFull, got.Status)
	assert.True(t, got.IsAvailable)
	require.Len(t, got.UnavailableBlocks, 1)
	b := got.UnavailableBlocks[0]
	require.NotNil(t, b.Start)
	assert.Equal(t, "12:00", b.Start.Format("15:04"))
	assert.Empty(t, b.Status)
}

func TestResolveBlockageOtherDayIgnored(t *testing.T) {
	blockages := []Blockage{{
		PersonID:  testPersonID,
		Date:      dates.DayKey("2026-01-06"),
		StartTime: *mustTod(t, "12:00"),
		EndTime:   *mustTod(t, "14:00"),
	}}

	got := Resolve(testPerson(), dates.DayKey("2026-01-05"), nil, nil, blockages)
	assert.Empty(t, got.UnavailableBlocks)
}

func TestResolveBlockagesAppendedOnRestrictedDay(t *testing.T) {
	day := dates.DayKey("2026-01-05")
	absences := []Absence{{
		PersonID:  testPersonID,
		StartDate: day,
		EndDate:   day,
		Status:    AbsenceApproved,
	}}
	blockages := []Blockage{{
		PersonID:  testPersonID,
		Date:      day,
		StartTime: *mustTod(t, "09:00"),
		EndTime:   *mustTod(t, "10:00"),
	}}

	got := Resolve(testPerson(), day, nil, absences, blockages)

	// day stays restricted by the absence; the blockage still lands in the list
	assert.False(t, got.IsAvailable)
	assert.Len(t, got.UnavailableBlocks, 2)
}
