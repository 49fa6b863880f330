// file: internals/features/personnel/people/controller/person_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/people/dto"
	m "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/people/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type PersonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *PersonController {
	return &PersonController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

func (ctl *PersonController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreatePersonRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Normalize()

	row := req.ToModel(orgID)
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "person created", d.FromModel(row))
}

/* ========================= List ========================= */

func (ctl *PersonController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.PersonModel{}).
		Where("person_org_id = ?", orgID)

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("person_full_name ILIKE ?", "%"+s+"%")
	}
	if teamStr := strings.TrimSpace(c.Query("team_id")); teamStr != "" {
		teamID, err := uuid.Parse(teamStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid team_id")
		}
		q = q.Where("person_team_id = ?", teamID)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("person_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.PersonModel
	if err := q.Order("person_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= GetByID ========================= */

func (ctl *PersonController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row m.PersonModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("person_id = ? AND person_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "person not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

/* ========================= Patch ========================= */

func (ctl *PersonController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdatePersonRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.PersonModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("person_id = ? AND person_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "person not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&row)
	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "person updated", d.FromModel(row))
}

/* ========================= Delete ========================= */

func (ctl *PersonController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("person_id = ? AND person_org_id = ?", id, orgID).
		Delete(&m.PersonModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "person not found")
	}
	return helper.JsonDeleted(c, "person deleted", fiber.Map{"person_id": id})
}
