// file: internals/features/personnel/teams/dto/team_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/IdanZeman/Miuim-sub008/internals/features/personnel/teams/model"
)

/* ===== Response ===== */

type TeamResponse struct {
	TeamID        string    `json:"team_id"`
	TeamName      string    `json:"team_name"`
	TeamCode      string    `json:"team_code,omitempty"`
	TeamTags      []string  `json:"team_tags,omitempty"`
	TeamIsActive  bool      `json:"team_is_active"`
	TeamCreatedAt time.Time `json:"team_created_at"`
}

func FromModel(m model.TeamModel) TeamResponse {
	return TeamResponse{
		TeamID:        m.TeamID.String(),
		TeamName:      m.TeamName,
		TeamCode:      m.TeamCode,
		TeamTags:      m.TeamTags,
		TeamIsActive:  m.TeamIsActive,
		TeamCreatedAt: m.TeamCreatedAt,
	}
}

func FromModels(ms []model.TeamModel) []TeamResponse {
	out := make([]TeamResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ===== Create Request ===== */

type CreateTeamRequest struct {
	TeamName string   `json:"team_name" validate:"required,min=2,max=120"`
	TeamCode string   `json:"team_code" validate:"omitempty,max=24"`
	TeamTags []string `json:"team_tags" validate:"omitempty,dive,min=1,max=40"`
}

func (r *CreateTeamRequest) Normalize() {
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.TeamCode = strings.ToUpper(strings.TrimSpace(r.TeamCode))
}

func (r CreateTeamRequest) ToModel(orgID uuid.UUID) model.TeamModel {
	return model.TeamModel{
		TeamOrgID:    orgID,
		TeamName:     r.TeamName,
		TeamCode:     r.TeamCode,
		TeamTags:     pq.StringArray(r.TeamTags),
		TeamIsActive: true,
	}
}

/* ===== Update Request ===== */

type UpdateTeamRequest struct {
	TeamName     *string   `json:"team_name" validate:"omitempty,min=2,max=120"`
	TeamCode     *string   `json:"team_code" validate:"omitempty,max=24"`
	TeamTags     *[]string `json:"team_tags" validate:"omitempty,dive,min=1,max=40"`
	TeamIsActive *bool     `json:"team_is_active"`
}

func (r UpdateTeamRequest) ApplyUpdates(m *model.TeamModel) {
	if r.TeamName != nil {
		m.TeamName = strings.TrimSpace(*r.TeamName)
	}
	if r.TeamCode != nil {
		m.TeamCode = strings.ToUpper(strings.TrimSpace(*r.TeamCode))
	}
	if r.TeamTags != nil {
		m.TeamTags = pq.StringArray(*r.TeamTags)
	}
	if r.TeamIsActive != nil {
		m.TeamIsActive = *r.TeamIsActive
	}
}
