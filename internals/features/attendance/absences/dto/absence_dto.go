// file: internals/features/attendance/absences/dto/absence_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/absences/model"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* ===== Response ===== */

type AbsenceResponse struct {
	AbsenceID        string     `json:"absence_id"`
	AbsencePersonID  string     `json:"absence_person_id"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	Status           string     `json:"status"`
	Reason           string     `json:"reason,omitempty"`
	DecidedBy        *string    `json:"decided_by,omitempty"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
	AbsenceCreatedAt time.Time  `json:"absence_created_at"`
}

func FromModel(m model.AbsenceModel) AbsenceResponse {
	var decidedBy *string
	if m.AbsenceDecidedBy != nil {
		s := m.AbsenceDecidedBy.String()
		decidedBy = &s
	}
	return AbsenceResponse{
		AbsenceID:        m.AbsenceID.String(),
		AbsencePersonID:  m.AbsencePersonID.String(),
		StartDate:        string(dates.DayKeyOf(m.AbsenceStartDate)),
		EndDate:          string(dates.DayKeyOf(m.AbsenceEndDate)),
		Status:           string(m.AbsenceStatus),
		Reason:           m.AbsenceReason,
		DecidedBy:        decidedBy,
		DecidedAt:        m.AbsenceDecidedAt,
		AbsenceCreatedAt: m.AbsenceCreatedAt,
	}
}

func FromModels(ms []model.AbsenceModel) []AbsenceResponse {
	out := make([]AbsenceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ===== Create Request ===== */

type CreateAbsenceRequest struct {
	PersonID  uuid.UUID `json:"person_id" validate:"required"`
	StartDate string    `json:"start_date" validate:"required"`
	EndDate   string    `json:"end_date" validate:"required"`
	Reason    string    `json:"reason" validate:"omitempty,max=500"`
}

func (r *CreateAbsenceRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
}

// ToModel parses both dates and checks the range order; new requests always
// start pending.
func (r CreateAbsenceRequest) ToModel(orgID uuid.UUID) (model.AbsenceModel, error) {
	start, err := dates.ParseDayKey(r.StartDate)
	if err != nil {
		return model.AbsenceModel{}, err
	}
	end, err := dates.ParseDayKey(r.EndDate)
	if err != nil {
		return model.AbsenceModel{}, err
	}
	if end.Before(start) {
		return model.AbsenceModel{}, errEndBeforeStart
	}
	return model.AbsenceModel{
		AbsenceOrgID:     orgID,
		AbsencePersonID:  r.PersonID,
		AbsenceStartDate: start.Time(),
		AbsenceEndDate:   end.Time(),
		AbsenceStatus:    model.AbsencePending,
		AbsenceReason:    r.Reason,
	}, nil
}

var errEndBeforeStart = errDTO("end_date is before start_date")

type errDTO string

func (e errDTO) Error() string { return string(e) }

/* ===== Update Request ===== */

type UpdateAbsenceRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Reason    *string `json:"reason" validate:"omitempty,max=500"`
}

func (r UpdateAbsenceRequest) ApplyUpdates(m *model.AbsenceModel) error {
	if r.StartDate != nil {
		day, err := dates.ParseDayKey(*r.StartDate)
		if err != nil {
			return err
		}
		m.AbsenceStartDate = day.Time()
	}
	if r.EndDate != nil {
		day, err := dates.ParseDayKey(*r.EndDate)
		if err != nil {
			return err
		}
		m.AbsenceEndDate = day.Time()
	}
	if m.AbsenceEndDate.Before(m.AbsenceStartDate) {
		return errEndBeforeStart
	}
	if r.Reason != nil {
		m.AbsenceReason = strings.TrimSpace(*r.Reason)
	}
	return nil
}
