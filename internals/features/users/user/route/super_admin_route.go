// internals/features/users/user/route/super_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schooladmin_backend/internals/features/users/user/controller"
)

func AdminStaffSuperAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAdminStaffController(db)
	staff := r.Group("/staff")
	staff.Post("/", ctl.Create)
	staff.Get("/", ctl.List)
	staff.Get("/:id", ctl.GetByID)
	staff.Put("/:id", ctl.Update)
	staff.Delete("/:id", ctl.Delete)
}
