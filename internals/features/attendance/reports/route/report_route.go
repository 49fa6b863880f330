// file: internals/features/attendance/reports/route/report_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/features/attendance/reports/controller"
	"github.com/IdanZeman/Miuim-sub008/internals/middlewares"
)

// /api/u/reports (read, rate limited: report queries fan out per person)
func ReportUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/reports", middlewares.ReportRateLimiter())
	g.Get("/changes", ctl.Changes)
	g.Get("/daily", ctl.Daily)
	g.Get("/daily/pdf", ctl.DailyPDF)
}

// /api/a/reports
func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	g := api.Group("/reports", middlewares.ReportRateLimiter())
	g.Get("/changes", ctl.Changes)
	g.Get("/daily", ctl.Daily)
	g.Get("/daily/pdf", ctl.DailyPDF)
}
