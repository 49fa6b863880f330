// file: internals/features/attendance/availability/engine/presence.go
package engine

// IsPresentAt decides boolean presence for one minute of the day given a
// resolved availability.
//
// home/unavailable are always absent. Arrival days start at StartHour and
// departure days end at EndHour; either hour missing means full-day presence
// on that side. A block whose interval contains the minute forces absence
// when it is enforceable: approved absences and hourly blockages (which have
// no approval concept) are enforced, pending and rejected ones are visible
// but non-binding.
func IsPresentAt(av EffectiveAvailability, minuteOfDay int) bool {
	switch av.Status {
	case StatusHome, StatusUnavailable:
		return false
	case StatusArrival:
		if av.StartHour != nil && minuteOfDay < av.StartHour.MinuteOfDay() {
			return false
		}
	case StatusDeparture:
		if av.EndHour != nil && minuteOfDay >= av.EndHour.MinuteOfDay() {
			return false
		}
	}

	for _, b := range av.UnavailableBlocks {
		if !blockEnforced(b) {
			continue
		}
		if b.contains(minuteOfDay) {
			return false
		}
	}
	return true
}

func blockEnforced(b UnavailableBlock) bool {
	return b.Status == "" || b.Status == string(AbsenceApproved)
}
