// file: internals/features/attendance/availability/engine/cycle.go
package engine

import (
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// CycleDay is the cycle-relative classification of one calendar day under a
// rotation schedule.
type CycleDay string

const (
	CycleArrival   CycleDay = "arrival"
	CycleFull      CycleDay = "full"
	CycleDeparture CycleDay = "departure"
	CycleHome      CycleDay = "home"
)

// Usable reports whether the schedule carries enough to classify against.
// CycleLength is the only field the arithmetic needs; no consistency check
// against DaysOnBase+DaysAtHome is performed (mismatched data classifies as
// supplied).
func (s RotationSchedule) Usable() bool {
	return s.CycleLength > 0 && s.StartDate.Valid()
}

// ClassifyCycleDay maps a calendar day onto its position in the rotation
// cycle. Offset 0 is the arrival day, the last on-base day is the departure
// day, everything at or past DaysOnBase is at home. Dates before StartDate
// resolve through the floor-mod as if the cycle had always been running.
//
// A fully-resident rotation (DaysOnBase >= CycleLength) has an arrival day
// and otherwise only full days: there is no day before leaving.
func ClassifyCycleDay(day dates.DayKey, s RotationSchedule) CycleDay {
	offset := dates.FloorMod(day.DaysSince(s.StartDate), s.CycleLength)

	if offset == 0 {
		return CycleArrival
	}
	if s.DaysOnBase >= s.CycleLength {
		return CycleFull
	}
	switch {
	case offset < s.DaysOnBase-1:
		return CycleFull
	case offset == s.DaysOnBase-1:
		return CycleDeparture
	default:
		return CycleHome
	}
}
