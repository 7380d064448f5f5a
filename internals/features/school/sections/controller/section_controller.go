// internals/features/school/sections/controller/section_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sectionDTO "schooladmin_backend/internals/features/school/sections/dto"
	sectionModel "schooladmin_backend/internals/features/school/sections/model"
	helper "schooladmin_backend/internals/helpers"
)

type SectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db, Validate: validator.New()}
}

// POST /api/a/sections
func (h *SectionController) Create(c *fiber.Ctx) error {
	var req sectionDTO.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&sectionModel.SectionModel{}).
			Where("lower(section_name) = lower(?) AND section_deleted_at IS NULL", req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate name")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "A section with this name already exists")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "A section with this name already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create section")
		}
		c.Locals("created_section", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("created_section").(sectionModel.SectionModel)
	return helper.JsonCreated(c, "Section created", sectionDTO.FromSectionModel(m))
}

// GET /api/a/sections
func (h *SectionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&sectionModel.SectionModel{})
	if !strings.EqualFold(c.Query("with_inactive"), "true") {
		q = q.Where("section_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count sections")
	}

	var rows []sectionModel.SectionModel
	if err := q.Order("section_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list sections")
	}

	return helper.JsonList(c, "Sections fetched", sectionDTO.FromSectionModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/sections/:id
func (h *SectionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}

	var m sectionModel.SectionModel
	if err := h.DB.Where("section_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch section")
	}
	return helper.JsonOK(c, "Section fetched", sectionDTO.FromSectionModel(m))
}

// PUT /api/a/sections/:id
func (h *SectionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}

	var req sectionDTO.UpdateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m sectionModel.SectionModel
	if err := h.DB.Where("section_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch section")
	}

	if req.Name != nil {
		var cnt int64
		if err := h.DB.Model(&sectionModel.SectionModel{}).
			Where("lower(section_name) = lower(?) AND section_id <> ? AND section_deleted_at IS NULL", *req.Name, id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate name")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "A section with this name already exists")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "A section with this name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update section")
	}
	return helper.JsonUpdated(c, "Section updated", sectionDTO.FromSectionModel(m))
}

// DELETE /api/a/sections/:id  (logical deactivation)
func (h *SectionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}

	var m sectionModel.SectionModel
	if err := h.DB.Where("section_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch section")
	}

	m.SectionIsActive = false
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate section")
	}
	return helper.JsonDeleted(c, "Section deactivated", fiber.Map{"section_id": id})
}
