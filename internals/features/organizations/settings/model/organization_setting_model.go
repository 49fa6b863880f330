// file: internals/features/organizations/settings/model/organization_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

// AvailabilityStrategyEnum selects the availability computation mode for the
// organization.
type AvailabilityStrategyEnum string

const (
	StrategyOnDemand    AvailabilityStrategyEnum = "on_demand"
	StrategyPrecomputed AvailabilityStrategyEnum = "precomputed"
)

type OrganizationSettingModel struct {
	OrganizationSettingID uuid.UUID `gorm:"column:organization_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"organization_setting_id"`

	// tenant scope (one row per org, unique index in migration)
	OrganizationSettingOrgID uuid.UUID `gorm:"column:organization_setting_org_id;type:uuid;not null;uniqueIndex" json:"organization_setting_org_id"`

	OrganizationSettingAvailabilityStrategy AvailabilityStrategyEnum `gorm:"column:organization_setting_availability_strategy;type:varchar(20);not null;default:'on_demand'" json:"organization_setting_availability_strategy"`

	// defaults applied when a rotation carries no explicit hours
	OrganizationSettingDefaultArrivalTime   *dates.TimeOfDay `gorm:"column:organization_setting_default_arrival_time;type:time"   json:"organization_setting_default_arrival_time,omitempty"`
	OrganizationSettingDefaultDepartureTime *dates.TimeOfDay `gorm:"column:organization_setting_default_departure_time;type:time" json:"organization_setting_default_departure_time,omitempty"`

	OrganizationSettingTimezone string `gorm:"column:organization_setting_timezone;type:varchar(64);not null;default:'Asia/Jerusalem'" json:"organization_setting_timezone"`

	// audit
	OrganizationSettingCreatedAt time.Time      `gorm:"column:organization_setting_created_at;type:timestamptz;not null;autoCreateTime" json:"organization_setting_created_at"`
	OrganizationSettingUpdatedAt time.Time      `gorm:"column:organization_setting_updated_at;type:timestamptz;not null;autoUpdateTime" json:"organization_setting_updated_at"`
	OrganizationSettingDeletedAt gorm.DeletedAt `gorm:"column:organization_setting_deleted_at;index"                                   json:"organization_setting_deleted_at,omitempty"`
}

func (OrganizationSettingModel) TableName() string { return "organization_settings" }
