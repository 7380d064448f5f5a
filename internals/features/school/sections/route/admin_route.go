// internals/features/school/sections/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionController "schooladmin_backend/internals/features/school/sections/controller"
)

/*
Admin routes: full CRUD
Mount example: SectionAdminRoutes(app.Group("/api/a"), db)
*/
func SectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sectionController.NewSectionController(db)
	sections := r.Group("/sections")
	sections.Post("/", ctl.Create)
	sections.Get("/", ctl.List)
	sections.Get("/:id", ctl.GetByID)
	sections.Put("/:id", ctl.Update)
	sections.Delete("/:id", ctl.Delete)
}
