// internals/features/records/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "schooladmin_backend/internals/features/records/enrollments/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)
	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctl.Create)
	enrollments.Get("/", ctl.List)
	enrollments.Get("/stats", ctl.Stats)
	enrollments.Get("/:id", ctl.GetByID)
	enrollments.Put("/:id", ctl.Update)
	enrollments.Post("/:id/payments", ctl.RecordPayment)
	enrollments.Patch("/:id/refresh-status", ctl.RefreshStatus)
	enrollments.Delete("/:id", ctl.Delete)
}
