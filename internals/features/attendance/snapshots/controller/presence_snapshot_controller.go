// file: internals/features/attendance/snapshots/controller/presence_snapshot_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/snapshots/dto"
	m "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/snapshots/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type PresenceSnapshotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *PresenceSnapshotController {
	return &PresenceSnapshotController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Capture ========================= */

// Capture stores one whole reported-presence batch atomically. The batch id
// comes back to the caller for later change reports.
func (ctl *PresenceSnapshotController) Capture(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CaptureSnapshotRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Normalize()

	batchID := uuid.New()
	rows := req.ToModels(orgID, batchID)

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "snapshot captured", fiber.Map{
		"batch_id":    batchID,
		"entry_count": len(rows),
	})
}

/* ========================= List batches ========================= */

// ListBatches returns batches newest first with their entry counts.
func (ctl *PresenceSnapshotController) ListBatches(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	base := ctl.DB.WithContext(c.Context()).Model(&m.PresenceSnapshotModel{}).
		Where("presence_snapshot_org_id = ?", orgID)

	var total int64
	if err := base.Session(&gorm.Session{}).
		Distinct("presence_snapshot_batch_id").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var batches []d.SnapshotBatchResponse
	if err := base.Session(&gorm.Session{}).
		Select("presence_snapshot_batch_id AS batch_id, MIN(presence_snapshot_captured_at) AS captured_at, COUNT(*) AS entry_count").
		Group("presence_snapshot_batch_id").
		Order("captured_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&batches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "snapshot batches", batches, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= Batch detail ========================= */

func (ctl *PresenceSnapshotController) GetBatch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	batchID, err := parseUUIDParam(c, "batchId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid batch id")
	}

	var rows []m.PresenceSnapshotModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("presence_snapshot_org_id = ? AND presence_snapshot_batch_id = ?", orgID, batchID).
		Order("presence_snapshot_captured_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "snapshot batch not found")
	}

	return helper.JsonOK(c, "snapshot batch", fiber.Map{
		"batch_id":    batchID,
		"captured_at": rows[0].PresenceSnapshotCapturedAt,
		"entries":     d.EntriesFromModels(rows),
	})
}
