// internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "schooladmin_backend/internals/features/school/classes/dto"
	classModel "schooladmin_backend/internals/features/school/classes/model"
	sectionModel "schooladmin_backend/internals/features/school/sections/model"
	helper "schooladmin_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

// POST /api/a/classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// parent section must exist
	var section sectionModel.SectionModel
	if err := h.DB.Where("section_id = ?", req.SectionID).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check section")
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", classDTO.FromClassModel(m))
}

// GET /api/a/classes?section_id=&level=
func (h *ClassController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&classModel.ClassModel{})
	if !strings.EqualFold(c.Query("with_inactive"), "true") {
		q = q.Where("class_is_active = TRUE")
	}
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sid, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid section_id filter")
		}
		q = q.Where("class_section_id = ?", sid)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("level"))); v != "" {
		q = q.Where("class_level = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []classModel.ClassModel
	if err := q.Order("class_level ASC, class_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list classes")
	}
	return helper.JsonList(c, "Classes fetched", classDTO.FromClassModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/classes/:id
func (h *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}

	var m classModel.ClassModel
	if err := h.DB.Where("class_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}
	return helper.JsonOK(c, "Class fetched", classDTO.FromClassModel(m))
}

// PUT /api/a/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m classModel.ClassModel
	if err := h.DB.Where("class_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if req.SectionID != nil {
		var cnt int64
		if err := h.DB.Model(&sectionModel.SectionModel{}).
			Where("section_id = ?", *req.SectionID).Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check section")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
	}

	// shrinking capacity below the current headcount would corrupt the
	// student bookkeeping
	if req.MaxCapacity != nil && *req.MaxCapacity < m.ClassHeadcount {
		return fiber.NewError(fiber.StatusConflict, "Max capacity cannot drop below current headcount")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonUpdated(c, "Class updated", classDTO.FromClassModel(m))
}

// DELETE /api/a/classes/:id  (logical deactivation)
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}

	var m classModel.ClassModel
	if err := h.DB.Where("class_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	m.ClassIsActive = false
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate class")
	}
	return helper.JsonDeleted(c, "Class deactivated", fiber.Map{"class_id": id})
}
