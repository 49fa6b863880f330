// file: internals/features/attendance/absences/model/absence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// AbsenceStatusEnum mirrors the absence_status_enum in Postgres.
type AbsenceStatusEnum string

const (
	AbsencePending  AbsenceStatusEnum = "pending"
	AbsenceApproved AbsenceStatusEnum = "approved"
	AbsenceRejected AbsenceStatusEnum = "rejected"
)

// AbsenceModel is a date-ranged (inclusive) absence request. Only approved
// rows change resolved day status; pending/rejected ones surface as
// informational blocks.
type AbsenceModel struct {
	AbsenceID uuid.UUID `gorm:"column:absence_id;type:uuid;default:gen_random_uuid();primaryKey" json:"absence_id"`

	// tenant scope
	AbsenceOrgID    uuid.UUID `gorm:"column:absence_org_id;type:uuid;not null;index"    json:"absence_org_id"`
	AbsencePersonID uuid.UUID `gorm:"column:absence_person_id;type:uuid;not null;index" json:"absence_person_id"`

	AbsenceStartDate time.Time `gorm:"column:absence_start_date;type:date;not null" json:"absence_start_date"`
	AbsenceEndDate   time.Time `gorm:"column:absence_end_date;type:date;not null"   json:"absence_end_date"`

	AbsenceStatus AbsenceStatusEnum `gorm:"column:absence_status;type:varchar(16);not null;default:'pending'" json:"absence_status"`
	AbsenceReason string            `gorm:"column:absence_reason;type:text"                                   json:"absence_reason,omitempty"`

	AbsenceDecidedBy *uuid.UUID `gorm:"column:absence_decided_by;type:uuid"        json:"absence_decided_by,omitempty"`
	AbsenceDecidedAt *time.Time `gorm:"column:absence_decided_at;type:timestamptz" json:"absence_decided_at,omitempty"`

	// audit
	AbsenceCreatedAt time.Time      `gorm:"column:absence_created_at;type:timestamptz;not null;autoCreateTime" json:"absence_created_at"`
	AbsenceUpdatedAt time.Time      `gorm:"column:absence_updated_at;type:timestamptz;not null;autoUpdateTime" json:"absence_updated_at"`
	AbsenceDeletedAt gorm.DeletedAt `gorm:"column:absence_deleted_at;index"                                    json:"absence_deleted_at,omitempty"`
}

func (AbsenceModel) TableName() string { return "absences" }

// ToEngine maps the row to the engine's absence shape.
func (a AbsenceModel) ToEngine() engine.Absence {
	return engine.Absence{
		PersonID:  a.AbsencePersonID,
		StartDate: dates.DayKeyOf(a.AbsenceStartDate),
		EndDate:   dates.DayKeyOf(a.AbsenceEndDate),
		Status:    engine.AbsenceStatus(a.AbsenceStatus),
		Reason:    a.AbsenceReason,
	}
}
