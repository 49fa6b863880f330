// file: internals/features/personnel/rotations/dto/team_rotation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/features/personnel/rotations/model"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* ===== Response ===== */

type TeamRotationResponse struct {
	TeamRotationID        string           `json:"team_rotation_id"`
	TeamRotationTeamID    string           `json:"team_rotation_team_id"`
	DaysOnBase            int              `json:"days_on_base"`
	DaysAtHome            int              `json:"days_at_home"`
	CycleLength           int              `json:"cycle_length"`
	StartDate             string           `json:"start_date"`
	ArrivalTime           *dates.TimeOfDay `json:"arrival_time,omitempty"`
	DepartureTime         *dates.TimeOfDay `json:"departure_time,omitempty"`
	TeamRotationCreatedAt time.Time        `json:"team_rotation_created_at"`
}

func FromModel(m model.TeamRotationModel) TeamRotationResponse {
	return TeamRotationResponse{
		TeamRotationID:        m.TeamRotationID.String(),
		TeamRotationTeamID:    m.TeamRotationTeamID.String(),
		DaysOnBase:            m.TeamRotationDaysOnBase,
		DaysAtHome:            m.TeamRotationDaysAtHome,
		CycleLength:           m.TeamRotationCycleLength,
		StartDate:             string(dates.DayKeyOf(m.TeamRotationStartDate)),
		ArrivalTime:           m.TeamRotationArrivalTime,
		DepartureTime:         m.TeamRotationDepartureTime,
		TeamRotationCreatedAt: m.TeamRotationCreatedAt,
	}
}

func FromModels(ms []model.TeamRotationModel) []TeamRotationResponse {
	out := make([]TeamRotationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ===== Create Request ===== */

type CreateTeamRotationRequest struct {
	TeamID        uuid.UUID        `json:"team_id" validate:"required"`
	DaysOnBase    int              `json:"days_on_base" validate:"required,min=1,max=365"`
	DaysAtHome    int              `json:"days_at_home" validate:"min=0,max=365"`
	CycleLength   int              `json:"cycle_length" validate:"required,min=1,max=730"`
	StartDate     string           `json:"start_date" validate:"required"`
	ArrivalTime   *dates.TimeOfDay `json:"arrival_time"`
	DepartureTime *dates.TimeOfDay `json:"departure_time"`
}

// ToModel parses the start date; the DayKey round trip rejects anything that
// is not a real calendar day.
func (r CreateTeamRotationRequest) ToModel(orgID uuid.UUID) (model.TeamRotationModel, error) {
	day, err := dates.ParseDayKey(r.StartDate)
	if err != nil {
		return model.TeamRotationModel{}, err
	}
	return model.TeamRotationModel{
		TeamRotationOrgID:         orgID,
		TeamRotationTeamID:        r.TeamID,
		TeamRotationDaysOnBase:    r.DaysOnBase,
		TeamRotationDaysAtHome:    r.DaysAtHome,
		TeamRotationCycleLength:   r.CycleLength,
		TeamRotationStartDate:     day.Time(),
		TeamRotationArrivalTime:   r.ArrivalTime,
		TeamRotationDepartureTime: r.DepartureTime,
	}, nil
}

/* ===== Update Request ===== */

type UpdateTeamRotationRequest struct {
	DaysOnBase    *int             `json:"days_on_base" validate:"omitempty,min=1,max=365"`
	DaysAtHome    *int             `json:"days_at_home" validate:"omitempty,min=0,max=365"`
	CycleLength   *int             `json:"cycle_length" validate:"omitempty,min=1,max=730"`
	StartDate     *string          `json:"start_date"`
	ArrivalTime   *dates.TimeOfDay `json:"arrival_time"`
	DepartureTime *dates.TimeOfDay `json:"departure_time"`
}

func (r UpdateTeamRotationRequest) ApplyUpdates(m *model.TeamRotationModel) error {
	if r.DaysOnBase != nil {
		m.TeamRotationDaysOnBase = *r.DaysOnBase
	}
	if r.DaysAtHome != nil {
		m.TeamRotationDaysAtHome = *r.DaysAtHome
	}
	if r.CycleLength != nil {
		m.TeamRotationCycleLength = *r.CycleLength
	}
	if r.StartDate != nil {
		day, err := dates.ParseDayKey(*r.StartDate)
		if err != nil {
			return err
		}
		m.TeamRotationStartDate = day.Time()
	}
	if r.ArrivalTime != nil {
		m.TeamRotationArrivalTime = r.ArrivalTime
	}
	if r.DepartureTime != nil {
		m.TeamRotationDepartureTime = r.DepartureTime
	}
	return nil
}
