// internals/features/inventory/equipment/controller/equipment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	equipmentDTO "schooladmin_backend/internals/features/inventory/equipment/dto"
	equipmentModel "schooladmin_backend/internals/features/inventory/equipment/model"
	helper "schooladmin_backend/internals/helpers"
)

type EquipmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEquipmentController(db *gorm.DB) *EquipmentController {
	return &EquipmentController{DB: db, Validate: validator.New()}
}

// POST /api/a/equipment
func (h *EquipmentController) Create(c *fiber.Ctx) error {
	var req equipmentDTO.CreateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create equipment")
	}
	return helper.JsonCreated(c, "Equipment created", equipmentDTO.FromEquipmentModel(m))
}

// GET /api/a/equipment?category=&condition=&search=
func (h *EquipmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&equipmentModel.EquipmentModel{})
	if v := strings.ToLower(strings.TrimSpace(c.Query("category"))); v != "" {
		q = q.Where("equipment_category = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("condition"))); v != "" {
		q = q.Where("equipment_condition = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("equipment_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count equipment")
	}

	var rows []equipmentModel.EquipmentModel
	if err := q.Order("equipment_category ASC, equipment_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list equipment")
	}
	return helper.JsonList(c, "Equipment fetched", equipmentDTO.FromEquipmentModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/equipment/stats
func (h *EquipmentController) Stats(c *fiber.Ctx) error {
	var agg struct {
		TotalItems       int64
		TotalUnits       int64
		InventoryValue   int64
		NeufCount        int64
		BonCount         int64
		MoyenCount       int64
		MauvaisCount     int64
		HorsServiceCount int64
	}
	err := h.DB.Model(&equipmentModel.EquipmentModel{}).Select(`
		COUNT(*) AS total_items,
		COALESCE(SUM(equipment_quantity), 0) AS total_units,
		COALESCE(SUM(equipment_quantity * equipment_unit_price), 0) AS inventory_value,
		COUNT(*) FILTER (WHERE equipment_condition = 'neuf')         AS neuf_count,
		COUNT(*) FILTER (WHERE equipment_condition = 'bon')          AS bon_count,
		COUNT(*) FILTER (WHERE equipment_condition = 'moyen')        AS moyen_count,
		COUNT(*) FILTER (WHERE equipment_condition = 'mauvais')      AS mauvais_count,
		COUNT(*) FILTER (WHERE equipment_condition = 'hors_service') AS hors_service_count
	`).Scan(&agg).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute equipment statistics")
	}

	return helper.JsonOK(c, "Equipment statistics computed", equipmentDTO.EquipmentStatsResponse{
		TotalItems:       agg.TotalItems,
		TotalUnits:       agg.TotalUnits,
		InventoryValue:   agg.InventoryValue,
		NeufCount:        agg.NeufCount,
		BonCount:         agg.BonCount,
		MoyenCount:       agg.MoyenCount,
		MauvaisCount:     agg.MauvaisCount,
		HorsServiceCount: agg.HorsServiceCount,
	})
}

// GET /api/a/equipment/:id
func (h *EquipmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid equipment ID")
	}

	var m equipmentModel.EquipmentModel
	if err := h.DB.Where("equipment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Equipment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch equipment")
	}
	return helper.JsonOK(c, "Equipment fetched", equipmentDTO.FromEquipmentModel(m))
}

// PUT /api/a/equipment/:id
func (h *EquipmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid equipment ID")
	}

	var req equipmentDTO.UpdateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m equipmentModel.EquipmentModel
	if err := h.DB.Where("equipment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Equipment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch equipment")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update equipment")
	}
	return helper.JsonUpdated(c, "Equipment updated", equipmentDTO.FromEquipmentModel(m))
}

// PATCH /api/a/equipment/:id/condition
func (h *EquipmentController) ChangeCondition(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid equipment ID")
	}

	var req equipmentDTO.ChangeConditionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Condition = strings.ToLower(strings.TrimSpace(req.Condition))
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m equipmentModel.EquipmentModel
	if err := h.DB.Where("equipment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Equipment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch equipment")
	}

	m.EquipmentCondition = req.Condition
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update equipment condition")
	}
	return helper.JsonUpdated(c, "Equipment condition updated", equipmentDTO.FromEquipmentModel(m))
}

// DELETE /api/a/equipment/:id  (soft delete)
func (h *EquipmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid equipment ID")
	}

	res := h.DB.Where("equipment_id = ?", id).Delete(&equipmentModel.EquipmentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete equipment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Equipment not found")
	}
	return helper.JsonDeleted(c, "Equipment deleted", fiber.Map{"equipment_id": id})
}
