// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub008/internals/constants"
	authMiddleware "github.com/IdanZeman/Miuim-sub008/internals/middlewares/auth"
	routeDetails "github.com/IdanZeman/Miuim-sub008/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group (JWT)...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(
			constants.RoleErrorAdmin("administration endpoints"),
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Organization routes...")
	routeDetails.OrganizationUserRoutes(private, db)
	routeDetails.OrganizationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Personnel routes...")
	routeDetails.PersonnelUserRoutes(private, db)
	routeDetails.PersonnelAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(private, db)
	routeDetails.AttendanceAdminRoutes(admin, db)
}
