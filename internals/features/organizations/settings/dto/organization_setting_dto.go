// file: internals/features/organizations/settings/dto/organization_setting_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/IdanZeman/Miuim-sub008/internals/features/organizations/settings/model"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* ===== Response ===== */

type OrganizationSettingResponse struct {
	OrganizationSettingID   string           `json:"organization_setting_id"`
	AvailabilityStrategy    string           `json:"availability_strategy"`
	DefaultArrivalTime      *dates.TimeOfDay `json:"default_arrival_time,omitempty"`
	DefaultDepartureTime    *dates.TimeOfDay `json:"default_departure_time,omitempty"`
	Timezone                string           `json:"timezone"`
	OrganizationSettingUpdatedAt time.Time   `json:"updated_at"`
}

func FromModel(m model.OrganizationSettingModel) OrganizationSettingResponse {
	return OrganizationSettingResponse{
		OrganizationSettingID:        m.OrganizationSettingID.String(),
		AvailabilityStrategy:         string(m.OrganizationSettingAvailabilityStrategy),
		DefaultArrivalTime:           m.OrganizationSettingDefaultArrivalTime,
		DefaultDepartureTime:         m.OrganizationSettingDefaultDepartureTime,
		Timezone:                     m.OrganizationSettingTimezone,
		OrganizationSettingUpdatedAt: m.OrganizationSettingUpdatedAt,
	}
}

/* ===== Update Request ===== */

type UpdateOrganizationSettingRequest struct {
	AvailabilityStrategy *string          `json:"availability_strategy" validate:"omitempty,oneof=on_demand precomputed"`
	DefaultArrivalTime   *dates.TimeOfDay `json:"default_arrival_time"`
	DefaultDepartureTime *dates.TimeOfDay `json:"default_departure_time"`
	Timezone             *string          `json:"timezone" validate:"omitempty,min=1,max=64"`
}

func (r *UpdateOrganizationSettingRequest) Normalize() {
	if r.AvailabilityStrategy != nil {
		v := strings.ToLower(strings.TrimSpace(*r.AvailabilityStrategy))
		r.AvailabilityStrategy = &v
	}
	if r.Timezone != nil {
		v := strings.TrimSpace(*r.Timezone)
		r.Timezone = &v
	}
}

func (r UpdateOrganizationSettingRequest) ApplyUpdates(m *model.OrganizationSettingModel) {
	if r.AvailabilityStrategy != nil {
		m.OrganizationSettingAvailabilityStrategy = model.AvailabilityStrategyEnum(*r.AvailabilityStrategy)
	}
	if r.DefaultArrivalTime != nil {
		m.OrganizationSettingDefaultArrivalTime = r.DefaultArrivalTime
	}
	if r.DefaultDepartureTime != nil {
		m.OrganizationSettingDefaultDepartureTime = r.DefaultDepartureTime
	}
	if r.Timezone != nil {
		m.OrganizationSettingTimezone = *r.Timezone
	}
}
