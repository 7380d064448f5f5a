// internals/route/details/super_admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/constants"
	maintenanceRoute "schooladmin_backend/internals/features/personnel/maintenance/route"
	userRoute "schooladmin_backend/internals/features/users/user/route"
	authMiddleware "schooladmin_backend/internals/middlewares/auth"
)

// SuperAdminRoutes wires account and personnel management, reserved
// for super admins.
func SuperAdminRoutes(app *fiber.App, db *gorm.DB) {
	super := app.Group("/api/sa",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("staff management"),
			constants.SuperAdminOnly...,
		),
	)

	userRoute.AdminStaffSuperAdminRoutes(super, db)
	maintenanceRoute.MaintenanceAdminRoutes(super, db)
}
