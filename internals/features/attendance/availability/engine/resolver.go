// file: internals/features/attendance/availability/engine/resolver.go
package engine

import (
	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// Resolve computes the effective availability of one person on one day from
// the supplied records. It is a pure function: no clock reads, no I/O, and
// calling it twice with the same inputs yields the same output.
//
// Precedence runs highest-first with a locked flag: once a layer clears
// IsAvailable, no lower layer restores it.
//  1. approved absence covering the day
//  2. active personal rotation landing in its off portion
//  3. team rotation (last matching schedule in slice order wins)
//  4. default: full / available
//
// Absences of any status covering the day and hourly blockages on the day are
// appended to the block list regardless of the day-level outcome.
func Resolve(person Person, day dates.DayKey, rotations []RotationSchedule, absences []Absence, blockages []Blockage) EffectiveAvailability {
	res := EffectiveAvailability{
		Status:      StatusFull,
		IsAvailable: true,
		Source:      SourceDefault,
	}
	locked := false

	// layer 1: absences
	for _, a := range absences {
		if a.PersonID != person.ID || !a.Covers(day) {
			continue
		}
		res.UnavailableBlocks = append(res.UnavailableBlocks, UnavailableBlock{
			Reason: a.Reason,
			Status: string(a.Status),
		})
		if a.Status == AbsenceApproved && !locked {
			res.Status = StatusHome
			res.IsAvailable = false
			res.Source = SourceAbsence
			locked = true
		}
	}

	// layer 2: personal rotation override
	if !locked && person.Rotation != nil && person.Rotation.Active {
		pr := person.Rotation
		cycle := pr.DaysOn + pr.DaysOff
		if cycle > 0 && pr.StartDate.Valid() {
			offset := dates.FloorMod(day.DaysSince(pr.StartDate), cycle)
			if offset >= pr.DaysOn {
				res.Status = StatusHome
				res.IsAvailable = false
				res.Source = SourcePersonalRotation
				locked = true
			}
		}
	}

	// layer 3: team rotation
	if !locked {
		if sched := pickTeamSchedule(person.TeamID, rotations); sched != nil {
			switch ClassifyCycleDay(day, *sched) {
			case CycleArrival:
				res.Status = StatusArrival
				res.Source = SourceTeamRotation
				res.StartHour = sched.ArrivalTime
			case CycleDeparture:
				res.Status = StatusDeparture
				res.Source = SourceTeamRotation
				res.EndHour = sched.DepartureTime
			case CycleHome:
				res.Status = StatusHome
				res.IsAvailable = false
				res.Source = SourceTeamRotation
			case CycleFull:
				res.Status = StatusFull
				res.Source = SourceTeamRotation
			}
		}
	}

	// hourly blockages always land in the block list and never touch the
	// day-level status.
	for _, b := range blockages {
		if b.PersonID != person.ID || b.Date != day || !b.Date.Valid() {
			continue
		}
		start, end := b.StartTime, b.EndTime
		res.UnavailableBlocks = append(res.UnavailableBlocks, UnavailableBlock{
			Start:  &start,
			End:    &end,
			Reason: b.Reason,
		})
	}

	return res
}

// pickTeamSchedule returns the last usable schedule for the team in slice
// order. When callers feed schedules ordered by creation time this makes
// "most recently created wins" the tie-break for duplicate active schedules.
func pickTeamSchedule(teamID uuid.UUID, rotations []RotationSchedule) *RotationSchedule {
	var picked *RotationSchedule
	for i := range rotations {
		if rotations[i].TeamID == teamID && rotations[i].Usable() {
			picked = &rotations[i]
		}
	}
	return picked
}
