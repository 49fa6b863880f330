// file: internals/features/attendance/snapshots/model/presence_snapshot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PresenceSnapshotModel is one person's raw reported status inside a capture
// batch. Rows are append-only: a batch is the ground truth of what was
// reported at capture time, so there is no update path and no soft delete.
type PresenceSnapshotModel struct {
	PresenceSnapshotID uuid.UUID `gorm:"column:presence_snapshot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"presence_snapshot_id"`

	// batch scope
	PresenceSnapshotBatchID uuid.UUID `gorm:"column:presence_snapshot_batch_id;type:uuid;not null;index" json:"presence_snapshot_batch_id"`
	PresenceSnapshotOrgID   uuid.UUID `gorm:"column:presence_snapshot_org_id;type:uuid;not null;index"   json:"presence_snapshot_org_id"`

	PresenceSnapshotPersonID uuid.UUID `gorm:"column:presence_snapshot_person_id;type:uuid;not null;index" json:"presence_snapshot_person_id"`

	// raw status as reported, not normalized ("full", "home", "mission", ...)
	PresenceSnapshotStatus string `gorm:"column:presence_snapshot_status;type:varchar(32);not null" json:"presence_snapshot_status"`

	PresenceSnapshotCapturedAt time.Time `gorm:"column:presence_snapshot_captured_at;type:timestamptz;not null;autoCreateTime" json:"presence_snapshot_captured_at"`
}

func (PresenceSnapshotModel) TableName() string { return "presence_snapshots" }
