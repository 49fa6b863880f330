package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, NormBase, Normalize("full"))
	assert.Equal(t, NormBase, Normalize("arrival"))
	assert.Equal(t, NormBase, Normalize("departure"))
	assert.Equal(t, NormHome, Normalize("home"))
	assert.Equal(t, NormHome, Normalize("unavailable"))
	assert.Equal(t, NormHome, Normalize(""))
	// externally captured statuses pass through
	assert.Equal(t, NormalizedStatus("mission"), Normalize("mission"))
	assert.Equal(t, NormalizedStatus("leave"), Normalize("leave"))
}

func fixedResolver(statuses map[uuid.UUID]AvailabilityStatus) ResolveFunc {
	return func(p Person) (EffectiveAvailability, error) {
		return EffectiveAvailability{Status: statuses[p.ID]}, nil
	}
}

func TestDiffArrivalToDepartureIsNotAChange(t *testing.T) {
	p := Person{ID: uuid.New(), TeamID: uuid.New()}
	prior := []SnapshotRecord{{PersonID: p.ID, Status: "arrival", CapturedAt: time.Now()}}

	changes, perTeam, err := Diff(prior, []Person{p}, fixedResolver(map[uuid.UUID]AvailabilityStatus{
		p.ID: StatusDeparture,
	}))
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Empty(t, perTeam)
}

func TestDiffDetectsStatusChange(t *testing.T) {
	teamID := uuid.New()
	left := Person{ID: uuid.New(), TeamID: teamID}
	stayed := Person{ID: uuid.New(), TeamID: teamID}

	prior := []SnapshotRecord{
		{PersonID: left.ID, Status: "full"},
		{PersonID: stayed.ID, Status: "full"},
	}

	changes, perTeam, err := Diff(prior, []Person{left, stayed}, fixedResolver(map[uuid.UUID]AvailabilityStatus{
		left.ID:   StatusHome,
		stayed.ID: StatusFull,
	}))
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, left.ID, changes[0].Person.ID)
	assert.Equal(t, NormBase, changes[0].From)
	assert.Equal(t, NormHome, changes[0].To)
	assert.Equal(t, 1, perTeam[teamID])
}

func TestDiffMissingPriorBaselinesAtHome(t *testing.T) {
	p := Person{ID: uuid.New(), TeamID: uuid.New()}

	// no prior record: a now-present person shows up as home → base
	changes, _, err := Diff(nil, []Person{p}, fixedResolver(map[uuid.UUID]AvailabilityStatus{
		p.ID: StatusFull,
	}))
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, NormHome, changes[0].From)
	assert.Equal(t, NormBase, changes[0].To)

	// and a still-at-home person without a prior record is not a change
	changes, _, err = Diff(nil, []Person{p}, fixedResolver(map[uuid.UUID]AvailabilityStatus{
		p.ID: StatusHome,
	}))
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestDiffPerTeamSummary(t *testing.T) {
	teamA := uuid.New()
	teamB := uuid.New()
	people := []Person{
		{ID: uuid.New(), TeamID: teamA},
		{ID: uuid.New(), TeamID: teamA},
		{ID: uuid.New(), TeamID: teamB},
	}

	statuses := map[uuid.UUID]AvailabilityStatus{
		people[0].ID: StatusFull,
		people[1].ID: StatusFull,
		people[2].ID: StatusFull,
	}

	changes, perTeam, err := Diff(nil, people, fixedResolver(statuses))
	require.NoError(t, err)
	assert.Len(t, changes, 3)
	assert.Equal(t, 2, perTeam[teamA])
	assert.Equal(t, 1, perTeam[teamB])
}

func TestDiffPropagatesResolverError(t *testing.T) {
	p := Person{ID: uuid.New()}
	boom := errors.New("lookup failed")

	_, _, err := Diff(nil, []Person{p}, func(Person) (EffectiveAvailability, error) {
		return EffectiveAvailability{}, boom
	})
	assert.ErrorIs(t, err, boom)
}
