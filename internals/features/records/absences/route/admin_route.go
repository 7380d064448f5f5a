// internals/features/records/absences/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absenceController "schooladmin_backend/internals/features/records/absences/controller"
)

func AbsenceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := absenceController.NewAbsenceController(db)
	absences := r.Group("/absences")
	absences.Post("/", ctl.Create)
	absences.Get("/", ctl.List)
	absences.Get("/student/:studentId/stats", ctl.StudentStats)
	absences.Get("/class/:classId/stats", ctl.ClassStats)
	absences.Get("/:id", ctl.GetByID)
	absences.Patch("/:id/justify", ctl.Justify)
	absences.Delete("/:id", ctl.Delete)
}
