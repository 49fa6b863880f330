// file: internals/features/personnel/rotations/controller/team_rotation_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/rotations/dto"
	m "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/rotations/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TeamRotationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeamRotationController {
	return &TeamRotationController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

func (ctl *TeamRotationController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateTeamRotationRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}

	row, err := req.ToModel(orgID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date: "+err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "rotation created", d.FromModel(row))
}

/* ========================= List ========================= */

func (ctl *TeamRotationController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.TeamRotationModel{}).
		Where("team_rotation_org_id = ?", orgID)

	if teamStr := strings.TrimSpace(c.Query("team_id")); teamStr != "" {
		teamID, err := uuid.Parse(teamStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid team_id")
		}
		q = q.Where("team_rotation_team_id = ?", teamID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.TeamRotationModel
	if err := q.Order("team_rotation_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ========================= GetByID ========================= */

func (ctl *TeamRotationController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row m.TeamRotationModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("team_rotation_id = ? AND team_rotation_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "rotation not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

/* ========================= Patch ========================= */

func (ctl *TeamRotationController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateTeamRotationRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.TeamRotationModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("team_rotation_id = ? AND team_rotation_org_id = ?", id, orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "rotation not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyUpdates(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date: "+err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "rotation updated", d.FromModel(row))
}

/* ========================= Delete ========================= */

func (ctl *TeamRotationController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("team_rotation_id = ? AND team_rotation_org_id = ?", id, orgID).
		Delete(&m.TeamRotationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "rotation not found")
	}
	return helper.JsonDeleted(c, "rotation deleted", fiber.Map{"team_rotation_id": id})
}
