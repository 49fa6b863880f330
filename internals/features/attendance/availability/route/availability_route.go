// file: internals/features/attendance/availability/route/availability_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/controller"
)

// /api/u/availability (read)
func AvailabilityUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/availability")
	g.Get("/board", ctl.GetBoard)
	g.Get("/people/:id", ctl.GetPersonAvailability)
	g.Get("/people/:id/presence", ctl.GetPersonPresence)
}

// /api/a/availability (read + materialize)
func AvailabilityAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/availability")
	g.Get("/board", ctl.GetBoard)
	g.Get("/people/:id", ctl.GetPersonAvailability)
	g.Get("/people/:id/presence", ctl.GetPersonPresence)
	g.Post("/materialize", ctl.Materialize)
}
