// internals/features/records/discipline/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	disciplineController "schooladmin_backend/internals/features/records/discipline/controller"
)

func DisciplineAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := disciplineController.NewDisciplineController(db)
	discipline := r.Group("/discipline")
	discipline.Post("/", ctl.Create)
	discipline.Get("/", ctl.List)
	discipline.Get("/:id", ctl.GetByID)
	discipline.Put("/:id", ctl.Update)
	discipline.Patch("/:id/close", ctl.Close)
	discipline.Delete("/:id", ctl.Delete)
}
