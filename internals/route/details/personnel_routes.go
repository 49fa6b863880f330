// file: internals/route/details/personnel_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	personRoute "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/people/route"
	rotationRoute "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/rotations/route"
	teamRoute "github.com/IdanZeman/Miuim-sub008/internals/features/personnel/teams/route"
)

// PersonnelUserRoutes mounts the read-only personnel surface under /api/u.
func PersonnelUserRoutes(api fiber.Router, db *gorm.DB) {
	teamRoute.TeamUserRoutes(api, db)
	personRoute.PersonUserRoutes(api, db)
	rotationRoute.RotationUserRoutes(api, db)
}

// PersonnelAdminRoutes mounts personnel management under /api/a.
func PersonnelAdminRoutes(api fiber.Router, db *gorm.DB) {
	teamRoute.TeamAdminRoutes(api, db)
	personRoute.PersonAdminRoutes(api, db)
	rotationRoute.RotationAdminRoutes(api, db)
}
