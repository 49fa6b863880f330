// file: internals/features/attendance/absences/controller/absence_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/absences/dto"
	m "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/absences/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* =========================
   Controller & Constructor
   ========================= */

type AbsenceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AbsenceController {
	return &AbsenceController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

func (ctl *AbsenceController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateAbsenceRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Normalize()

	row, err := req.ToModel(orgID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "absence requested", d.FromModel(row))
}

/* ========================= List ========================= */

func (ctl *AbsenceController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.AbsenceModel{}).
		Where("absence_org_id = ?", orgID)

	if personStr := strings.TrimSpace(c.Query("person_id")); personStr != "" {
		personID, err := uuid.Parse(personStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid person_id")
		}
		q = q.Where("absence_person_id = ?", personID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("absence_status = ?", strings.ToLower(st))
	}
	if dayStr := strings.TrimSpace(c.Query("date")); dayStr != "" {
		day, err := dates.ParseDayKey(dayStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date (want YYYY-MM-DD)")
		}
		q = q.Where("absence_start_date <= ? AND absence_end_date >= ?", day.Time(), day.Time())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.AbsenceModel
	if err := q.Order("absence_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= GetByID ========================= */

func (ctl *AbsenceController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row m.AbsenceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("absence_id = ? AND absence_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "absence not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

/* ========================= Patch ========================= */

// Patch edits dates/reason of a still-pending request only; decided requests
// are immutable except through approve/reject.
func (ctl *AbsenceController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateAbsenceRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.AbsenceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("absence_id = ? AND absence_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "absence not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.AbsenceStatus != m.AbsencePending {
		return helper.JsonError(c, fiber.StatusConflict, "absence already decided")
	}

	if err := req.ApplyUpdates(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "absence updated", d.FromModel(row))
}

/* ========================= Approve / Reject ========================= */

func (ctl *AbsenceController) Approve(c *fiber.Ctx) error {
	return ctl.decide(c, m.AbsenceApproved)
}

func (ctl *AbsenceController) Reject(c *fiber.Ctx) error {
	return ctl.decide(c, m.AbsenceRejected)
}

func (ctl *AbsenceController) decide(c *fiber.Ctx, status m.AbsenceStatusEnum) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row m.AbsenceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("absence_id = ? AND absence_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "absence not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.AbsenceStatus != m.AbsencePending {
		return helper.JsonError(c, fiber.StatusConflict, "absence already decided")
	}

	now := time.Now()
	row.AbsenceStatus = status
	row.AbsenceDecidedBy = &userID
	row.AbsenceDecidedAt = &now

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "absence "+string(status), d.FromModel(row))
}

/* ========================= Delete ========================= */

func (ctl *AbsenceController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("absence_id = ? AND absence_org_id = ?", id, orgID).
		Delete(&m.AbsenceModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "absence not found")
	}
	return helper.JsonDeleted(c, "absence deleted", fiber.Map{"absence_id": id})
}
