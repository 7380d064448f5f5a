// internals/features/school/teachers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "schooladmin_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(db)
	teachers := r.Group("/teachers")
	teachers.Post("/", ctl.Create)
	teachers.Get("/", ctl.List)
	teachers.Get("/:id", ctl.GetByID)
	teachers.Put("/:id", ctl.Update)
	teachers.Delete("/:id", ctl.Delete)

	teachers.Post("/:id/assignments", ctl.CreateAssignment)
	teachers.Get("/:id/assignments", ctl.ListAssignments)
	teachers.Delete("/:id/assignments/:assignmentId", ctl.DeleteAssignment)
}
