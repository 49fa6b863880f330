// file: internals/features/attendance/availability/model/availability_record_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// AvailabilityRecordModel is one materialized EffectiveAvailability per
// person per date, written by the materializer and read by the precomputed
// strategy. Derived data: rebuilt wholesale per org/date, so no soft delete.
// Unique (org, person, date) index in migration.
type AvailabilityRecordModel struct {
	AvailabilityRecordID uuid.UUID `gorm:"column:availability_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"availability_record_id"`

	// tenant scope
	AvailabilityRecordOrgID    uuid.UUID `gorm:"column:availability_record_org_id;type:uuid;not null;index:idx_availability_record_scope,unique"    json:"availability_record_org_id"`
	AvailabilityRecordPersonID uuid.UUID `gorm:"column:availability_record_person_id;type:uuid;not null;index:idx_availability_record_scope,unique" json:"availability_record_person_id"`
	AvailabilityRecordDate     time.Time `gorm:"column:availability_record_date;type:date;not null;index:idx_availability_record_scope,unique"      json:"availability_record_date"`

	AvailabilityRecordStatus    string `gorm:"column:availability_record_status;type:varchar(16);not null"  json:"availability_record_status"`
	AvailabilityRecordAvailable bool   `gorm:"column:availability_record_available;not null"                json:"availability_record_available"`
	AvailabilityRecordSource    string `gorm:"column:availability_record_source;type:varchar(24);not null"  json:"availability_record_source"`

	AvailabilityRecordStartHour *dates.TimeOfDay `gorm:"column:availability_record_start_hour;type:time" json:"availability_record_start_hour,omitempty"`
	AvailabilityRecordEndHour   *dates.TimeOfDay `gorm:"column:availability_record_end_hour;type:time"   json:"availability_record_end_hour,omitempty"`

	AvailabilityRecordBlocks datatypes.JSON `gorm:"column:availability_record_blocks;type:jsonb" json:"availability_record_blocks,omitempty"`

	AvailabilityRecordComputedAt time.Time `gorm:"column:availability_record_computed_at;type:timestamptz;not null;autoCreateTime" json:"availability_record_computed_at"`
}

func (AvailabilityRecordModel) TableName() string { return "availability_records" }

// FromEngine builds a materialized row out of a resolved availability.
func FromEngine(orgID, personID uuid.UUID, day dates.DayKey, av engine.EffectiveAvailability) (AvailabilityRecordModel, error) {
	var blocks datatypes.JSON
	if len(av.UnavailableBlocks) > 0 {
		b, err := json.Marshal(av.UnavailableBlocks)
		if err != nil {
			return AvailabilityRecordModel{}, err
		}
		blocks = datatypes.JSON(b)
	}
	return AvailabilityRecordModel{
		AvailabilityRecordOrgID:     orgID,
		AvailabilityRecordPersonID:  personID,
		AvailabilityRecordDate:      day.Time(),
		AvailabilityRecordStatus:    string(av.Status),
		AvailabilityRecordAvailable: av.IsAvailable,
		AvailabilityRecordSource:    string(av.Source),
		AvailabilityRecordStartHour: av.StartHour,
		AvailabilityRecordEndHour:   av.EndHour,
		AvailabilityRecordBlocks:    blocks,
	}, nil
}

// ToEngine rehydrates the materialized row into the engine's output shape.
func (m AvailabilityRecordModel) ToEngine() (engine.EffectiveAvailability, error) {
	av := engine.EffectiveAvailability{
		Status:      engine.AvailabilityStatus(m.AvailabilityRecordStatus),
		IsAvailable: m.AvailabilityRecordAvailable,
		Source:      engine.AvailabilitySource(m.AvailabilityRecordSource),
		StartHour:   m.AvailabilityRecordStartHour,
		EndHour:     m.AvailabilityRecordEndHour,
	}
	if len(m.AvailabilityRecordBlocks) > 0 {
		if err := json.Unmarshal(m.AvailabilityRecordBlocks, &av.UnavailableBlocks); err != nil {
			return engine.EffectiveAvailability{}, err
		}
	}
	return av, nil
}
