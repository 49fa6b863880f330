// file: internals/features/attendance/availability/dto/availability_dto.go
package dto

import (
	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/engine"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* =========================
   Responses
   ========================= */

type PersonAvailabilityResponse struct {
	PersonID     uuid.UUID                    `json:"person_id"`
	Date         dates.DayKey                 `json:"date"`
	Availability engine.EffectiveAvailability `json:"availability"`
}

type PersonPresenceResponse struct {
	PersonID uuid.UUID    `json:"person_id"`
	Date     dates.DayKey `json:"date"`
	Time     string       `json:"time"`
	Present  bool         `json:"present"`
}

/* =========================
   Materialize
   ========================= */

type MaterializeRequest struct {
	Date string `json:"date" validate:"required"`
}

type MaterializeResponse struct {
	Date           dates.DayKey `json:"date"`
	RecordsWritten int          `json:"records_written"`
}
