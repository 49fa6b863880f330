// file: internals/features/attendance/availability/engine/differ.go
package engine

import (
	"time"

	"github.com/google/uuid"
)

// NormalizedStatus is the coarse status set used only for change detection.
// full/arrival/departure all collapse to "base": the diff cares about
// present-vs-not, not arrival/departure nuance.
type NormalizedStatus string

const (
	NormBase NormalizedStatus = "base"
	NormHome NormalizedStatus = "home"
)

// Normalize collapses a raw status to its coarse bucket. Statuses outside the
// resolver's vocabulary (mission, leave, ...) pass through unchanged so
// externally captured snapshot values survive the round trip.
func Normalize(raw string) NormalizedStatus {
	switch AvailabilityStatus(raw) {
	case StatusFull, StatusArrival, StatusDeparture:
		return NormBase
	case StatusHome, StatusUnavailable:
		return NormHome
	case "":
		return NormHome
	default:
		return NormalizedStatus(raw)
	}
}

// SnapshotRecord is one per-person status captured at one point in time.
// Records sharing a CapturedAt belong to the same immutable batch.
type SnapshotRecord struct {
	PersonID   uuid.UUID
	Status     string
	CapturedAt time.Time
}

// ResolveFunc yields the current availability for a person. Injected so the
// differ works against either strategy (or a fixture in tests).
type ResolveFunc func(p Person) (EffectiveAvailability, error)

// StatusChange reports one person whose normalized status differs from the
// prior snapshot.
type StatusChange struct {
	Person Person
	From   NormalizedStatus
	To     NormalizedStatus
}

// Diff is a stateless one-shot comparison between a prior snapshot batch and
// freshly resolved availability. A person with no prior record is baselined
// at home rather than excluded, so new arrivals still show up as changes.
// The second return value counts changes per team for summary reporting.
func Diff(prior []SnapshotRecord, people []Person, resolve ResolveFunc) ([]StatusChange, map[uuid.UUID]int, error) {
	before := make(map[uuid.UUID]string, len(prior))
	for _, r := range prior {
		before[r.PersonID] = r.Status
	}

	var changes []StatusChange
	perTeam := make(map[uuid.UUID]int)

	for _, p := range people {
		av, err := resolve(p)
		if err != nil {
			return nil, nil, err
		}

		from := NormHome
		if raw, ok := before[p.ID]; ok {
			from = Normalize(raw)
		}
		to := Normalize(string(av.Status))

		if from != to {
			changes = append(changes, StatusChange{Person: p, From: from, To: to})
			perTeam[p.TeamID]++
		}
	}
	return changes, perTeam, nil
}
