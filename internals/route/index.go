// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "schooladmin_backend/internals/features/users/auth/route"
	"schooladmin_backend/internals/route/details"
)

// SetupRoutes mounts every route group:
//
//	/auth/*   public + session endpoints
//	/api/a/*  admin and super admin
//	/api/sa/* super admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
	details.AdminRoutes(app, db)
	details.SuperAdminRoutes(app, db)
}
