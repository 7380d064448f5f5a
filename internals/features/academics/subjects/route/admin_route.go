// internals/features/academics/subjects/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "schooladmin_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)
	subjects := r.Group("/subjects")
	subjects.Post("/", ctl.Create)
	subjects.Get("/", ctl.List)
	subjects.Get("/:id", ctl.GetByID)
	subjects.Put("/:id", ctl.Update)
	subjects.Delete("/:id", ctl.Delete)
}
