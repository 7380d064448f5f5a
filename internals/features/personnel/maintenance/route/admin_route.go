// internals/features/personnel/maintenance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	maintenanceController "schooladmin_backend/internals/features/personnel/maintenance/controller"
)

func MaintenanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := maintenanceController.NewMaintenanceController(db)
	staff := r.Group("/maintenance-staff")
	staff.Post("/", ctl.Create)
	staff.Get("/", ctl.List)
	staff.Get("/:id", ctl.GetByID)
	staff.Put("/:id", ctl.Update)
	staff.Delete("/:id", ctl.Delete)
}
