// file: internals/features/organizations/settings/route/organization_setting_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/organizations/settings/controller"
)

// /api/u/settings (read)
func SettingUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/settings")
	g.Get("/", ctl.Get)
}

// /api/a/settings (read + write)
func SettingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/settings")
	g.Get("/", ctl.Get)
	g.Patch("/", ctl.Patch)
}
