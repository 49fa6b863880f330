// file: internals/features/attendance/blockages/dto/hourly_blockage_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/blockages/model"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* ===== Response ===== */

type HourlyBlockageResponse struct {
	HourlyBlockageID string          `json:"hourly_blockage_id"`
	PersonID         string          `json:"person_id"`
	Date             string          `json:"date"`
	StartTime        dates.TimeOfDay `json:"start_time"`
	EndTime          dates.TimeOfDay `json:"end_time"`
	Reason           string          `json:"reason,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func FromModel(m model.HourlyBlockageModel) HourlyBlockageResponse {
	return HourlyBlockageResponse{
		HourlyBlockageID: m.HourlyBlockageID.String(),
		PersonID:         m.HourlyBlockagePersonID.String(),
		Date:             string(dates.DayKeyOf(m.HourlyBlockageDate)),
		StartTime:        m.HourlyBlockageStartTime,
		EndTime:          m.HourlyBlockageEndTime,
		Reason:           m.HourlyBlockageReason,
		CreatedAt:        m.HourlyBlockageCreatedAt,
	}
}

func FromModels(ms []model.HourlyBlockageModel) []HourlyBlockageResponse {
	out := make([]HourlyBlockageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ===== Create Request ===== */

type CreateHourlyBlockageRequest struct {
	PersonID  uuid.UUID        `json:"person_id" validate:"required"`
	Date      string           `json:"date" validate:"required"`
	StartTime *dates.TimeOfDay `json:"start_time" validate:"required"`
	EndTime   *dates.TimeOfDay `json:"end_time" validate:"required"`
	Reason    string           `json:"reason" validate:"omitempty,max=200"`
}

func (r CreateHourlyBlockageRequest) ToModel(orgID uuid.UUID) (model.HourlyBlockageModel, error) {
	day, err := dates.ParseDayKey(r.Date)
	if err != nil {
		return model.HourlyBlockageModel{}, err
	}
	return model.HourlyBlockageModel{
		HourlyBlockageOrgID:     orgID,
		HourlyBlockagePersonID:  r.PersonID,
		HourlyBlockageDate:      day.Time(),
		HourlyBlockageStartTime: *r.StartTime,
		HourlyBlockageEndTime:   *r.EndTime,
		HourlyBlockageReason:    strings.TrimSpace(r.Reason),
	}, nil
}
