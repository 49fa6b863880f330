// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absenceRoute "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/absences/route"
	availabilityRoute "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/availability/route"
	blockageRoute "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/blockages/route"
	reportRoute "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/reports/route"
	snapshotRoute "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/snapshots/route"
)

// AttendanceUserRoutes mounts the day-to-day attendance surface under /api/u:
// requesting absences, reading availability, capturing snapshots, reports.
func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	absenceRoute.AbsenceUserRoutes(api, db)
	blockageRoute.BlockageUserRoutes(api, db)
	availabilityRoute.AvailabilityUserRoutes(api, db)
	snapshotRoute.SnapshotUserRoutes(api, db)
	reportRoute.ReportUserRoutes(api, db)
}

// AttendanceAdminRoutes mounts attendance management under /api/a:
// absence decisions, blockage management, materialization.
func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	absenceRoute.AbsenceAdminRoutes(api, db)
	blockageRoute.BlockageAdminRoutes(api, db)
	availabilityRoute.AvailabilityAdminRoutes(api, db)
	snapshotRoute.SnapshotAdminRoutes(api, db)
	reportRoute.ReportAdminRoutes(api, db)
}
