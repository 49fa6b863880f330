// file: internals/features/attendance/snapshots/route/presence_snapshot_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/snapshots/controller"
)

// /api/u/snapshots (read)
func SnapshotUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/snapshots")
	g.Get("/", ctl.ListBatches)
	g.Get("/:batchId", ctl.GetBatch)
}

// /api/a/snapshots (capture + read)
func SnapshotAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/snapshots")
	g.Post("/capture", ctl.Capture)
	g.Get("/", ctl.ListBatches)
	g.Get("/:batchId", ctl.GetBatch)
}
