// file: internals/features/organizations/settings/controller/organization_setting_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/organizations/settings/dto"
	m "github.com/IdanZeman/Miuim-sub008/internals/features/organizations/settings/model"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type OrganizationSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *OrganizationSettingController {
	return &OrganizationSettingController{DB: db, Validate: v}
}

/* ========================= Get ========================= */

// GET /settings — settings row for the caller's org; a missing row answers
// with the defaults without creating one.
func (ctl *OrganizationSettingController) Get(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.OrganizationSettingModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("organization_setting_org_id = ?", orgID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = m.OrganizationSettingModel{
				OrganizationSettingOrgID:                orgID,
				OrganizationSettingAvailabilityStrategy: m.StrategyOnDemand,
				OrganizationSettingTimezone:             "Asia/Jerusalem",
			}
			return helper.JsonOK(c, "defaults", d.FromModel(row))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

/* ========================= Patch ========================= */

// PATCH /settings — upserts the org's settings row.
func (ctl *OrganizationSettingController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.UpdateOrganizationSettingRequest
	if err := helper.BindAndValidate(c, ctl.Validate, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Normalize()

	var row m.OrganizationSettingModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_setting_org_id = ?", orgID).
			First(&row).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			row = m.OrganizationSettingModel{
				OrganizationSettingOrgID:                orgID,
				OrganizationSettingAvailabilityStrategy: m.StrategyOnDemand,
				OrganizationSettingTimezone:             "Asia/Jerusalem",
			}
		}
		req.ApplyUpdates(&row)
		return tx.Save(&row).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "settings updated", d.FromModel(row))
}
