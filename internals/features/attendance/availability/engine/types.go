// file: internals/features/attendance/availability/engine/types.go

// Package engine is the effective-availability core: pure functions that map
// rotation, absence and blockage records onto a day-level presence
// classification for one person. It deliberately has no fiber/gorm imports;
// the service layer feeds it plain records and persists or serves whatever it
// returns.
package engine

import (
	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// AvailabilityStatus is the day-level classification for one person.
type AvailabilityStatus string

const (
	StatusFull        AvailabilityStatus = "full"
	StatusArrival     AvailabilityStatus = "arrival"
	StatusDeparture   AvailabilityStatus = "departure"
	StatusHome        AvailabilityStatus = "home"
	StatusUnavailable AvailabilityStatus = "unavailable"
)

// AvailabilitySource records which precedence layer produced the final
// status, for explainability.
type AvailabilitySource string

const (
	SourceAbsence          AvailabilitySource = "absence"
	SourcePersonalRotation AvailabilitySource = "personal_rotation"
	SourceTeamRotation     AvailabilitySource = "team_rotation"
	SourceDefault          AvailabilitySource = "default"
)

// AbsenceStatus mirrors the absence approval workflow.
type AbsenceStatus string

const (
	AbsencePending  AbsenceStatus = "pending"
	AbsenceApproved AbsenceStatus = "approved"
	AbsenceRejected AbsenceStatus = "rejected"
)

// Person is the engine's view of a person: identity, team, and the optional
// personal rotation that supersedes the team schedule when active.
type Person struct {
	ID       uuid.UUID
	TeamID   uuid.UUID
	Rotation *PersonalRotation
}

// PersonalRotation is an individually assigned on/off cycle.
type PersonalRotation struct {
	Active    bool
	DaysOn    int
	DaysOff   int
	StartDate dates.DayKey
}

// RotationSchedule is a team-level cyclic rotation definition.
type RotationSchedule struct {
	TeamID        uuid.UUID
	DaysOnBase    int
	DaysAtHome    int
	CycleLength   int
	StartDate     dates.DayKey
	ArrivalTime   *dates.TimeOfDay
	DepartureTime *dates.TimeOfDay
}

// Absence is a date-ranged (inclusive) absence request.
type Absence struct {
	PersonID  uuid.UUID
	StartDate dates.DayKey
	EndDate   dates.DayKey
	Status    AbsenceStatus
	Reason    string
}

// Covers reports whether day falls inside the inclusive range. Unparsable
// dates make the record non-matching rather than an error.
func (a Absence) Covers(day dates.DayKey) bool {
	if !a.StartDate.Valid() || !a.EndDate.Valid() || !day.Valid() {
		return false
	}
	return !day.Before(a.StartDate) && !day.After(a.EndDate)
}

// Blockage is a sub-day unavailability window. It never changes the day-level
// status; it only feeds the block list used by point-in-time checks.
type Blockage struct {
	PersonID  uuid.UUID
	Date      dates.DayKey
	StartTime dates.TimeOfDay
	EndTime   dates.TimeOfDay
	Reason    string
}

// UnavailableBlock is one entry in the resolved block list. Status carries
// the absence approval state for display; hourly blockages have no approval
// concept and leave it empty. A block with neither Start nor End spans the
// whole day.
type UnavailableBlock struct {
	Start  *dates.TimeOfDay `json:"start,omitempty"`
	End    *dates.TimeOfDay `json:"end,omitempty"`
	Reason string           `json:"reason,omitempty"`
	Status string           `json:"status,omitempty"`
}

// contains reports whether minute falls inside [Start, End). A block without
// hours covers the full day.
func (b UnavailableBlock) contains(minute int) bool {
	if b.Start == nil && b.End == nil {
		return true
	}
	start := 0
	if b.Start != nil {
		start = b.Start.MinuteOfDay()
	}
	end := 24 * 60
	if b.End != nil {
		end = b.End.MinuteOfDay()
	}
	return minute >= start && minute < end
}

// EffectiveAvailability is the resolved day-level outcome for one person on
// one date. Constructed fresh per query, never mutated afterwards.
type EffectiveAvailability struct {
	Status            AvailabilityStatus `json:"status"`
	IsAvailable       bool               `json:"is_available"`
	Source            AvailabilitySource `json:"source"`
	StartHour         *dates.TimeOfDay   `json:"start_hour,omitempty"`
	EndHour           *dates.TimeOfDay   `json:"end_hour,omitempty"`
	UnavailableBlocks []UnavailableBlock `json:"unavailable_blocks,omitempty"`
}
