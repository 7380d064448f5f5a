// internals/features/inventory/equipment/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	equipmentController "schooladmin_backend/internals/features/inventory/equipment/controller"
)

func EquipmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := equipmentController.NewEquipmentController(db)
	equipment := r.Group("/equipment")
	equipment.Post("/", ctl.Create)
	equipment.Get("/", ctl.List)
	equipment.Get("/stats", ctl.Stats)
	equipment.Get("/:id", ctl.GetByID)
	equipment.Put("/:id", ctl.Update)
	equipment.Patch("/:id/condition", ctl.ChangeCondition)
	equipment.Delete("/:id", ctl.Delete)
}
