// file: internals/features/personnel/teams/model/team_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeamModel struct {
	TeamID uuid.UUID `gorm:"column:team_id;type:uuid;default:gen_random_uuid();primaryKey" json:"team_id"`

	// tenant scope
	TeamOrgID uuid.UUID `gorm:"column:team_org_id;type:uuid;not null;index" json:"team_org_id"`

	TeamName string `gorm:"column:team_name;type:varchar(120);not null" json:"team_name"`
	TeamCode string `gorm:"column:team_code;type:varchar(24)"           json:"team_code,omitempty"`

	TeamTags pq.StringArray `gorm:"column:team_tags;type:text[]" json:"team_tags,omitempty"`

	TeamIsActive bool `gorm:"column:team_is_active;not null;default:true" json:"team_is_active"`

	// audit
	TeamCreatedAt time.Time      `gorm:"column:team_created_at;type:timestamptz;not null;autoCreateTime" json:"team_created_at"`
	TeamUpdatedAt time.Time      `gorm:"column:team_updated_at;type:timestamptz;not null;autoUpdateTime" json:"team_updated_at"`
	TeamDeletedAt gorm.DeletedAt `gorm:"column:team_deleted_at;index"                                    json:"team_deleted_at,omitempty"`
}

func (TeamModel) TableName() string { return "teams" }
