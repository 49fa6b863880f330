// file: internals/features/personnel/people/model/person_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

type PersonModel struct {
	PersonID uuid.UUID `gorm:"column:person_id;type:uuid;default:gen_random_uuid();primaryKey" json:"person_id"`

	// tenant scope
	PersonOrgID uuid.UUID `gorm:"column:person_org_id;type:uuid;not null;index" json:"person_org_id"`

	PersonTeamID *uuid.UUID `gorm:"column:person_team_id;type:uuid;index" json:"person_team_id,omitempty"`

	PersonFullName string `gorm:"column:person_full_name;type:varchar(160);not null" json:"person_full_name"`
	PersonRank     string `gorm:"column:person_rank;type:varchar(40)"                json:"person_rank,omitempty"`
	PersonPhone    string `gorm:"column:person_phone;type:varchar(32)"               json:"person_phone,omitempty"`

	PersonRoles pq.StringArray `gorm:"column:person_roles;type:text[]" json:"person_roles,omitempty"`

	// personal rotation override, embedded on the person; when active it
	// supersedes the team schedule
	PersonRotationActive    bool       `gorm:"column:person_rotation_active;not null;default:false" json:"person_rotation_active"`
	PersonRotationDaysOn    int        `gorm:"column:person_rotation_days_on;not null;default:0"    json:"person_rotation_days_on"`
	PersonRotationDaysOff   int        `gorm:"column:person_rotation_days_off;not null;default:0"   json:"person_rotation_days_off"`
	PersonRotationStartDate *time.Time `gorm:"column:person_rotation_start_date;type:date"          json:"person_rotation_start_date,omitempty"`

	PersonIsActive bool `gorm:"column:person_is_active;not null;default:true" json:"person_is_active"`

	// audit
	PersonCreatedAt time.Time      `gorm:"column:person_created_at;type:timestamptz;not null;autoCreateTime" json:"person_created_at"`
	PersonUpdatedAt time.Time      `gorm:"column:person_updated_at;type:timestamptz;not null;autoUpdateTime" json:"person_updated_at"`
	PersonDeletedAt gorm.DeletedAt `gorm:"column:person_deleted_at;index"                                    json:"person_deleted_at,omitempty"`
}

func (PersonModel) TableName() string { return "people" }

// ToEngine maps the row to the engine's view of a person.
func (p PersonModel) ToEngine() engine.Person {
	out := engine.Person{ID: p.PersonID}
	if p.PersonTeamID != nil {
		out.TeamID = *p.PersonTeamID
	}
	if p.PersonRotationActive || p.PersonRotationDaysOn > 0 || p.PersonRotationDaysOff > 0 {
		pr := engine.PersonalRotation{
			Active:  p.PersonRotationActive,
			DaysOn:  p.PersonRotationDaysOn,
			DaysOff: p.PersonRotationDaysOff,
		}
		if p.PersonRotationStartDate != nil {
			pr.StartDate = dates.DayKeyOf(*p.PersonRotationStartDate)
		}
		out.Rotation = &pr
	}
	return out
}
