// internals/features/personnel/maintenance/controller/maintenance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	maintenanceDTO "schooladmin_backend/internals/features/personnel/maintenance/dto"
	maintenanceModel "schooladmin_backend/internals/features/personnel/maintenance/model"
	helper "schooladmin_backend/internals/helpers"
)

type MaintenanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db, Validate: validator.New()}
}

// POST /api/a/maintenance-staff
func (h *MaintenanceController) Create(c *fiber.Ctx) error {
	var req maintenanceDTO.CreateMaintenanceStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create maintenance staff")
	}
	return helper.JsonCreated(c, "Maintenance staff created", maintenanceDTO.FromMaintenanceStaffModel(m))
}

// GET /api/a/maintenance-staff?status=&function=&search=
func (h *MaintenanceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&maintenanceModel.MaintenanceStaffModel{})
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("maintenance_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("function")); v != "" {
		q = q.Where("maintenance_function ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("maintenance_first_name ILIKE ? OR maintenance_last_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count maintenance staff")
	}

	var rows []maintenanceModel.MaintenanceStaffModel
	if err := q.Order("maintenance_last_name ASC, maintenance_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list maintenance staff")
	}
	return helper.JsonList(c, "Maintenance staff fetched", maintenanceDTO.FromMaintenanceStaffModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/maintenance-staff/:id
func (h *MaintenanceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid maintenance staff ID")
	}

	var m maintenanceModel.MaintenanceStaffModel
	if err := h.DB.Where("maintenance_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Maintenance staff not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch maintenance staff")
	}
	return helper.JsonOK(c, "Maintenance staff fetched", maintenanceDTO.FromMaintenanceStaffModel(m))
}

// PUT /api/a/maintenance-staff/:id
func (h *MaintenanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid maintenance staff ID")
	}

	var req maintenanceDTO.UpdateMaintenanceStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m maintenanceModel.MaintenanceStaffModel
	if err := h.DB.Where("maintenance_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Maintenance staff not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch maintenance staff")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update maintenance staff")
	}
	return helper.JsonUpdated(c, "Maintenance staff updated", maintenanceDTO.FromMaintenanceStaffModel(m))
}

// DELETE /api/a/maintenance-staff/:id  (soft delete + status flip)
func (h *MaintenanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid maintenance staff ID")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m maintenanceModel.MaintenanceStaffModel
		if err := tx.Where("maintenance_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Maintenance staff not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch maintenance staff")
		}

		m.MaintenanceStatus = maintenanceModel.StaffStatusInactif
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update maintenance staff")
		}
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete maintenance staff")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Maintenance staff deleted", fiber.Map{"maintenance_id": id})
}
