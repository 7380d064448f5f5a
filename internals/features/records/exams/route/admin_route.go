// internals/features/records/exams/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "schooladmin_backend/internals/features/records/exams/controller"
)

func ExamAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := examController.NewExamController(db)
	exams := r.Group("/exams")
	exams.Post("/", ctl.Create)
	exams.Get("/", ctl.List)
	exams.Get("/:id", ctl.GetByID)
	exams.Put("/:id", ctl.Update)
	exams.Patch("/:id/status", ctl.Transition)
	exams.Delete("/:id", ctl.Delete)
}
