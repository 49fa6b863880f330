// file: internals/features/attendance/snapshots/dto/presence_snapshot_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/snapshots/model"
)

/* =========================
   Requests
   ========================= */

type SnapshotEntryRequest struct {
	PersonID uuid.UUID `json:"person_id" validate:"required"`
	Status   string    `json:"status"    validate:"required,max=32"`
}

type CaptureSnapshotRequest struct {
	Entries []SnapshotEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

func (r *CaptureSnapshotRequest) Normalize() {
	for i := range r.Entries {
		r.Entries[i].Status = strings.ToLower(strings.TrimSpace(r.Entries[i].Status))
	}
}

// ToModels expands the request into batch rows sharing one batch id.
func (r CaptureSnapshotRequest) ToModels(orgID, batchID uuid.UUID) []m.PresenceSnapshotModel {
	rows := make([]m.PresenceSnapshotModel, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, m.PresenceSnapshotModel{
			PresenceSnapshotBatchID:  batchID,
			PresenceSnapshotOrgID:    orgID,
			PresenceSnapshotPersonID: e.PersonID,
			PresenceSnapshotStatus:   e.Status,
		})
	}
	return rows
}

/* =========================
   Responses
   ========================= */

type SnapshotEntryResponse struct {
	PersonID   uuid.UUID `json:"person_id"`
	Status     string    `json:"status"`
	CapturedAt time.Time `json:"captured_at"`
}

type SnapshotBatchResponse struct {
	BatchID    uuid.UUID `json:"batch_id"`
	CapturedAt time.Time `json:"captured_at"`
	EntryCount int       `json:"entry_count"`
}

func EntryFromModel(row m.PresenceSnapshotModel) SnapshotEntryResponse {
	return SnapshotEntryResponse{
		PersonID:   row.PresenceSnapshotPersonID,
		Status:     row.PresenceSnapshotStatus,
		CapturedAt: row.PresenceSnapshotCapturedAt,
	}
}

func EntriesFromModels(rows []m.PresenceSnapshotModel) []SnapshotEntryResponse {
	out := make([]SnapshotEntryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, EntryFromModel(row))
	}
	return out
}
