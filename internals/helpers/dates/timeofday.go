// file: internals/helpers/dates/timeofday.go
package dates

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay wraps a clock time with no date and no zone, stored in Postgres
// TIME columns and rendered as "HH:MM" over JSON.
type TimeOfDay struct{ time.Time }

// TimeOfDayFrom keeps HH:mm:ss of t, dropping date and zone.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tt TimeOfDay
	return tt, tt.parse(s)
}

// MinuteOfDay returns minutes since midnight (0..1439).
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour()*60 + t.Minute()
}

// ParseMinuteOfDay converts "HH:MM" to minutes since midnight.
func ParseMinuteOfDay(s string) (int, error) {
	tt, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	return tt.MinuteOfDay(), nil
}

// Scan accepts time.Time or "HH:MM[:SS]" strings.
func (t *TimeOfDay) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = x
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("timeofday: unsupported Scan type %T", v)
	}
}

func (t *TimeOfDay) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	t.Time = tt
	return nil
}

// Value sends "HH:MM:SS" so Postgres TIME accepts it.
func (t TimeOfDay) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04"))
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
