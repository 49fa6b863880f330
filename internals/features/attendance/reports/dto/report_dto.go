// file: internals/features/attendance/reports/dto/report_dto.go
package dto

import (
	"github.com/google/uuid"

	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* =========================
   Change report
   ========================= */

type StatusChangeResponse struct {
	PersonID   uuid.UUID `json:"person_id"`
	PersonName string    `json:"person_name"`
	TeamID     uuid.UUID `json:"team_id,omitempty"`
	TeamName   string    `json:"team_name,omitempty"`
	From       string    `json:"from"`
	To         string    `json:"to"`
}

type TeamChangeSummary struct {
	TeamID   uuid.UUID `json:"team_id"`
	TeamName string    `json:"team_name"`
	Changes  int       `json:"changes"`
}

type ChangeReportResponse struct {
	BatchID      uuid.UUID              `json:"batch_id"`
	Date         dates.DayKey           `json:"date"`
	Changes      []StatusChangeResponse `json:"changes"`
	TeamSummary  []TeamChangeSummary    `json:"team_summary"`
	TotalChanges int                    `json:"total_changes"`
}

/* =========================
   Daily report
   ========================= */

type TeamDailySummary struct {
	TeamID    uuid.UUID      `json:"team_id"`
	TeamName  string         `json:"team_name"`
	Total     int            `json:"total"`
	Available int            `json:"available"`
	ByStatus  map[string]int `json:"by_status"`
}

type DailyReportResponse struct {
	Date           dates.DayKey       `json:"date"`
	Teams          []TeamDailySummary `json:"teams"`
	TotalPeople    int                `json:"total_people"`
	TotalAvailable int                `json:"total_available"`
}
