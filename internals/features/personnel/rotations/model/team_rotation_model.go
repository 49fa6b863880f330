// file: internals/features/personnel/rotations/model/team_rotation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// TeamRotationModel is a team-level cyclic rotation definition. The intended
// design is cycle_length == days_on_base + days_at_home, but that is not
// enforced: the cycle arithmetic runs off cycle_length alone and inconsistent
// data classifies as supplied.
type TeamRotationModel struct {
	TeamRotationID uuid.UUID `gorm:"column:team_rotation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"team_rotation_id"`

	// tenant scope
	TeamRotationOrgID  uuid.UUID `gorm:"column:team_rotation_org_id;type:uuid;not null;index" json:"team_rotation_org_id"`
	TeamRotationTeamID uuid.UUID `gorm:"column:team_rotation_team_id;type:uuid;not null;index" json:"team_rotation_team_id"`

	TeamRotationDaysOnBase  int `gorm:"column:team_rotation_days_on_base;not null"  json:"team_rotation_days_on_base"`
	TeamRotationDaysAtHome  int `gorm:"column:team_rotation_days_at_home;not null"  json:"team_rotation_days_at_home"`
	TeamRotationCycleLength int `gorm:"column:team_rotation_cycle_length;not null"  json:"team_rotation_cycle_length"`

	TeamRotationStartDate time.Time `gorm:"column:team_rotation_start_date;type:date;not null" json:"team_rotation_start_date"`

	TeamRotationArrivalTime   *dates.TimeOfDay `gorm:"column:team_rotation_arrival_time;type:time"   json:"team_rotation_arrival_time,omitempty"`
	TeamRotationDepartureTime *dates.TimeOfDay `gorm:"column:team_rotation_departure_time;type:time" json:"team_rotation_departure_time,omitempty"`

	// audit
	TeamRotationCreatedAt time.Time      `gorm:"column:team_rotation_created_at;type:timestamptz;not null;autoCreateTime" json:"team_rotation_created_at"`
	TeamRotationUpdatedAt time.Time      `gorm:"column:team_rotation_updated_at;type:timestamptz;not null;autoUpdateTime" json:"team_rotation_updated_at"`
	TeamRotationDeletedAt gorm.DeletedAt `gorm:"column:team_rotation_deleted_at;index"                                    json:"team_rotation_deleted_at,omitempty"`
}

func (TeamRotationModel) TableName() string { return "team_rotations" }

// ToEngine maps the row to the engine's schedule shape.
func (r TeamRotationModel) ToEngine() engine.RotationSchedule {
	return engine.RotationSchedule{
		TeamID:        r.TeamRotationTeamID,
		DaysOnBase:    r.TeamRotationDaysOnBase,
		DaysAtHome:    r.TeamRotationDaysAtHome,
		CycleLength:   r.TeamRotationCycleLength,
		StartDate:     dates.DayKeyOf(r.TeamRotationStartDate),
		ArrivalTime:   r.TeamRotationArrivalTime,
		DepartureTime: r.TeamRotationDepartureTime,
	}
}
