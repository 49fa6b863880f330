// file: internals/features/attendance/blockages/route/hourly_blockage_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/blockages/controller"
)

// /api/u/blockages (read)
func BlockageUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/blockages")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

// /api/a/blockages (manage)
func BlockageAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/blockages")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Delete("/:id", ctl.Delete)
}
