// internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schooladmin_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)
	classes := r.Group("/classes")
	classes.Post("/", ctl.Create)
	classes.Get("/", ctl.List)
	classes.Get("/:id", ctl.GetByID)
	classes.Put("/:id", ctl.Update)
	classes.Delete("/:id", ctl.Delete)
}
