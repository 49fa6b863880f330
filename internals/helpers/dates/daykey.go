// file: internals/helpers/dates/daykey.go
package dates

import (
	"time"
)

// DayKey is a canonical "YYYY-MM-DD" calendar day, independent of any
// timezone. All day-level comparisons and cycle arithmetic go through this
// type so a date is never re-derived via locale formatting at comparison
// sites.
type DayKey string

const dayKeyLayout = "2006-01-02"

// DayKeyOf derives the key from the civil date of t (in t's own location).
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// ParseDayKey parses "YYYY-MM-DD".
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(dayKeyLayout, s)
	if err != nil {
		return "", err
	}
	return DayKeyOf(t), nil
}

// Valid reports whether the key parses as a real calendar day.
func (d DayKey) Valid() bool {
	_, err := time.Parse(dayKeyLayout, string(d))
	return err == nil
}

// Time returns UTC midnight of the day, or the zero time for invalid keys.
func (d DayKey) Time() time.Time {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// DaysSince returns d - o in whole days. Both ends are UTC midnights, so the
// division is exact even across DST transitions.
func (d DayKey) DaysSince(o DayKey) int {
	return int(d.Time().Sub(o.Time()).Hours() / 24)
}

// AddDays returns the key n days after d (n may be negative).
func (d DayKey) AddDays(n int) DayKey {
	return DayKeyOf(d.Time().AddDate(0, 0, n))
}

// Before/After use string order, which matches chronological order for valid
// keys.
func (d DayKey) Before(o DayKey) bool { return string(d) < string(o) }
func (d DayKey) After(o DayKey) bool  { return string(d) > string(o) }

// FloorMod is the non-negative remainder of a mod m (m > 0), so dates before
// a cycle start still land on a valid cycle offset.
func FloorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
