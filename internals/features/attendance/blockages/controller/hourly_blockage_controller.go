// file: internals/features/attendance/blockages/controller/hourly_blockage_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/blockages/dto"
	m "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/blockages/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
	"github.com/IdanZeman/Miuim-sub008/internals/helpers/dates"
)

/* =========================
   Controller & Constructor
   ========================= */

type HourlyBlockageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *HourlyBlockageController {
	return &HourlyBlockageController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

func (ctl *HourlyBlockageController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateHourlyBlockageRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	if req.EndTime.MinuteOfDay() <= req.StartTime.MinuteOfDay() {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	row, err := req.ToModel(orgID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date: "+err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "blockage created", d.FromModel(row))
}

/* ========================= List ========================= */

func (ctl *HourlyBlockageController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.HourlyBlockageModel{}).
		Where("hourly_blockage_org_id = ?", orgID)

	if personStr := strings.TrimSpace(c.Query("person_id")); personStr != "" {
		personID, err := uuid.Parse(personStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid person_id")
		}
		q = q.Where("hourly_blockage_person_id = ?", personID)
	}
	if dayStr := strings.TrimSpace(c.Query("date")); dayStr != "" {
		day, err := dates.ParseDayKey(dayStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date (want YYYY-MM-DD)")
		}
		q = q.Where("hourly_blockage_date = ?", day.Time())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.HourlyBlockageModel
	if err := q.Order("hourly_blockage_date DESC, hourly_blockage_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= GetByID ========================= */

func (ctl *HourlyBlockageController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row m.HourlyBlockageModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("hourly_blockage_id = ? AND hourly_blockage_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "blockage not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

/* ========================= Delete ========================= */

func (ctl *HourlyBlockageController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("hourly_blockage_id = ? AND hourly_blockage_org_id = ?", id, orgID).
		Delete(&m.HourlyBlockageModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "blockage not found")
	}
	return helper.JsonDeleted(c, "blockage deleted", fiber.Map{"hourly_blockage_id": id})
}
