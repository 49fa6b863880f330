// file: internals/route/details/organization_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingRoute "github.com/IdanZeman/Miuim-sub008/internals/features/organizations/settings/route"
)

// OrganizationUserRoutes mounts read-only org configuration under /api/u.
func OrganizationUserRoutes(api fiber.Router, db *gorm.DB) {
	settingRoute.SettingUserRoutes(api, db)
}

// OrganizationAdminRoutes mounts org configuration management under /api/a.
func OrganizationAdminRoutes(api fiber.Router, db *gorm.DB) {
	settingRoute.SettingAdminRoutes(api, db)
}
