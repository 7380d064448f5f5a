// internals/features/academics/grades/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "schooladmin_backend/internals/features/academics/grades/controller"
)

func GradeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gradeController.NewGradeController(db)
	grades := r.Group("/grades")
	grades.Post("/", ctl.Create)
	grades.Get("/", ctl.List)
	grades.Get("/student/:studentId/bulletin", ctl.Bulletin)
	grades.Get("/class/:classId/ranking", ctl.Ranking)
	grades.Get("/class/:classId/statistics", ctl.Statistics)
	grades.Get("/:id", ctl.GetByID)
	grades.Put("/:id", ctl.Update)
	grades.Delete("/:id", ctl.Delete)
}
