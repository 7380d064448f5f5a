// internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schooladmin_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)
	students := r.Group("/students")
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Get("/matricule/:matricule", ctl.GetByMatricule)
	students.Get("/:id", ctl.GetByID)
	students.Put("/:id", ctl.Update)
	students.Patch("/:id/activate", ctl.Activate)
	students.Delete("/:id", ctl.Delete)
}
