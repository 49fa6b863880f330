// file: internals/features/attendance/absences/route/absence_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/absences/controller"
)

// /api/u/absences (request + read)
func AbsenceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/absences")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
}

// /api/a/absences (decide + manage)
func AbsenceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/absences")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Post("/:id/approve", ctl.Approve)
	g.Post("/:id/reject", ctl.Reject)
	g.Delete("/:id", ctl.Delete)
}
