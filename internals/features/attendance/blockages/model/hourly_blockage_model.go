// file: internals/features/attendance/blockages/model/hourly_blockage_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// HourlyBlockageModel is a sub-day unavailability window. It never changes
// the day-level status, only the block list used by point-in-time checks.
type HourlyBlockageModel struct {
	HourlyBlockageID uuid.UUID `gorm:"column:hourly_blockage_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hourly_blockage_id"`

	// tenant scope
	HourlyBlockageOrgID    uuid.UUID `gorm:"column:hourly_blockage_org_id;type:uuid;not null;index"    json:"hourly_blockage_org_id"`
	HourlyBlockagePersonID uuid.UUID `gorm:"column:hourly_blockage_person_id;type:uuid;not null;index" json:"hourly_blockage_person_id"`

	HourlyBlockageDate time.Time `gorm:"column:hourly_blockage_date;type:date;not null" json:"hourly_blockage_date"`

	HourlyBlockageStartTime dates.TimeOfDay `gorm:"column:hourly_blockage_start_time;type:time;not null" json:"hourly_blockage_start_time"`
	HourlyBlockageEndTime   dates.TimeOfDay `gorm:"column:hourly_blockage_end_time;type:time;not null"   json:"hourly_blockage_end_time"`

	HourlyBlockageReason string `gorm:"column:hourly_blockage_reason;type:varchar(200)" json:"hourly_blockage_reason,omitempty"`

	// audit
	HourlyBlockageCreatedAt time.Time      `gorm:"column:hourly_blockage_created_at;type:timestamptz;not null;autoCreateTime" json:"hourly_blockage_created_at"`
	HourlyBlockageUpdatedAt time.Time      `gorm:"column:hourly_blockage_updated_at;type:timestamptz;not null;autoUpdateTime" json:"hourly_blockage_updated_at"`
	HourlyBlockageDeletedAt gorm.DeletedAt `gorm:"column:hourly_blockage_deleted_at;index"                                    json:"hourly_blockage_deleted_at,omitempty"`
}

func (HourlyBlockageModel) TableName() string { return "hourly_blockages" }

// ToEngine maps the row to the engine's blockage shape.
func (b HourlyBlockageModel) ToEngine() engine.Blockage {
	return engine.Blockage{
		PersonID:  b.HourlyBlockagePersonID,
		Date:      dates.DayKeyOf(b.HourlyBlockageDate),
		StartTime: b.HourlyBlockageStartTime,
		EndTime:   b.HourlyBlockageEndTime,
		Reason:    b.HourlyBlockageReason,
	}
}
