// file: internals/features/personnel/people/dto/person_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/IdanZeman/Miuim-sub008/internals/features/personnel/people/model"
)

/* ===== Response ===== */

type PersonResponse struct {
	PersonID       string   `json:"person_id"`
	PersonTeamID   *string  `json:"person_team_id,omitempty"`
	PersonFullName string   `json:"person_full_name"`
	PersonRank     string   `json:"person_rank,omitempty"`
	PersonPhone    string   `json:"person_phone,omitempty"`
	PersonRoles    []string `json:"person_roles,omitempty"`

	PersonRotationActive    bool       `json:"person_rotation_active"`
	PersonRotationDaysOn    int        `json:"person_rotation_days_on"`
	PersonRotationDaysOff   int        `json:"person_rotation_days_off"`
	PersonRotationStartDate *time.Time `json:"person_rotation_start_date,omitempty"`

	PersonIsActive  bool      `json:"person_is_active"`
	PersonCreatedAt time.Time `json:"person_created_at"`
}

func FromModel(m model.PersonModel) PersonResponse {
	var teamID *string
	if m.PersonTeamID != nil {
		s := m.PersonTeamID.String()
		teamID = &s
	}
	return PersonResponse{
		PersonID:                m.PersonID.String(),
		PersonTeamID:            teamID,
		PersonFullName:          m.PersonFullName,
		PersonRank:              m.PersonRank,
		PersonPhone:             m.PersonPhone,
		PersonRoles:             m.PersonRoles,
		PersonRotationActive:    m.PersonRotationActive,
		PersonRotationDaysOn:    m.PersonRotationDaysOn,
		PersonRotationDaysOff:   m.PersonRotationDaysOff,
		PersonRotationStartDate: m.PersonRotationStartDate,
		PersonIsActive:          m.PersonIsActive,
		PersonCreatedAt:         m.PersonCreatedAt,
	}
}

func FromModels(ms []model.PersonModel) []PersonResponse {
	out := make([]PersonResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ===== Create Request ===== */

type CreatePersonRequest struct {
	PersonTeamID   *uuid.UUID `json:"person_team_id"`
	PersonFullName string     `json:"person_full_name" validate:"required,min=2,max=160"`
	PersonRank     string     `json:"person_rank" validate:"omitempty,max=40"`
	PersonPhone    string     `json:"person_phone" validate:"omitempty,max=32"`
	PersonRoles    []string   `json:"person_roles" validate:"omitempty,dive,min=1,max=40"`

	PersonRotationActive    bool       `json:"person_rotation_active"`
	PersonRotationDaysOn    int        `json:"person_rotation_days_on" validate:"omitempty,min=0,max=365"`
	PersonRotationDaysOff   int        `json:"person_rotation_days_off" validate:"omitempty,min=0,max=365"`
	PersonRotationStartDate *time.Time `json:"person_rotation_start_date"`
}

func (r *CreatePersonRequest) Normalize() {
	r.PersonFullName = strings.TrimSpace(r.PersonFullName)
	r.PersonRank = strings.TrimSpace(r.PersonRank)
	r.PersonPhone = strings.TrimSpace(r.PersonPhone)
}

func (r CreatePersonRequest) ToModel(orgID uuid.UUID) model.PersonModel {
	return model.PersonModel{
		PersonOrgID:             orgID,
		PersonTeamID:            r.PersonTeamID,
		PersonFullName:          r.PersonFullName,
		PersonRank:              r.PersonRank,
		PersonPhone:             r.PersonPhone,
		PersonRoles:             pq.StringArray(r.PersonRoles),
		PersonRotationActive:    r.PersonRotationActive,
		PersonRotationDaysOn:    r.PersonRotationDaysOn,
		PersonRotationDaysOff:   r.PersonRotationDaysOff,
		PersonRotationStartDate: r.PersonRotationStartDate,
		PersonIsActive:          true,
	}
}

/* ===== Update Request ===== */

type UpdatePersonRequest struct {
	PersonTeamID   *uuid.UUID `json:"person_team_id"`
	PersonFullName *string    `json:"person_full_name" validate:"omitempty,min=2,max=160"`
	PersonRank     *string    `json:"person_rank" validate:"omitempty,max=40"`
	PersonPhone    *string    `json:"person_phone" validate:"omitempty,max=32"`
	PersonRoles    *[]string  `json:"person_roles" validate:"omitempty,dive,min=1,max=40"`

	PersonRotationActive    *bool      `json:"person_rotation_active"`
	PersonRotationDaysOn    *int       `json:"person_rotation_days_on" validate:"omitempty,min=0,max=365"`
	PersonRotationDaysOff   *int       `json:"person_rotation_days_off" validate:"omitempty,min=0,max=365"`
	PersonRotationStartDate *time.Time `json:"person_rotation_start_date"`

	PersonIsActive *bool `json:"person_is_active"`
}

func (r UpdatePersonRequest) ApplyUpdates(m *model.PersonModel) {
	if r.PersonTeamID != nil {
		m.PersonTeamID = r.PersonTeamID
	}
	if r.PersonFullName != nil {
		m.PersonFullName = strings.TrimSpace(*r.PersonFullName)
	}
	if r.PersonRank != nil {
		m.PersonRank = strings.TrimSpace(*r.PersonRank)
	}
	if r.PersonPhone != nil {
		m.PersonPhone = strings.TrimSpace(*r.PersonPhone)
	}
	if r.PersonRoles != nil {
		m.PersonRoles = pq.StringArray(*r.PersonRoles)
	}
	if r.PersonRotationActive != nil {
		m.PersonRotationActive = *r.PersonRotationActive
	}
	if r.PersonRotationDaysOn != nil {
		m.PersonRotationDaysOn = *r.PersonRotationDaysOn
	}
	if r.PersonRotationDaysOff != nil {
		m.PersonRotationDaysOff = *r.PersonRotationDaysOff
	}
	if r.PersonRotationStartDate != nil {
		m.PersonRotationStartDate = r.PersonRotationStartDate
	}
	if r.PersonIsActive != nil {
		m.PersonIsActive = *r.PersonIsActive
	}
}
