// internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "schooladmin_backend/internals/features/academics/subjects/dto"
	subjectModel "schooladmin_backend/internals/features/academics/subjects/model"
	helper "schooladmin_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// POST /api/a/subjects
func (h *SubjectController) Create(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("LOWER(subject_name) = LOWER(?)", req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check subject name")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Subject name already in use")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Subject name already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
		}
		c.Locals("created_subject", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_subject").(subjectModel.SubjectModel)
	return helper.JsonCreated(c, "Subject created", subjectDTO.FromSubjectModel(m))
}

// GET /api/a/subjects
func (h *SubjectController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&subjectModel.SubjectModel{})
	if !strings.EqualFold(c.Query("with_inactive"), "true") {
		q = q.Where("subject_is_active = TRUE")
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("subject_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []subjectModel.SubjectModel
	if err := q.Order("subject_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subjects")
	}
	return helper.JsonList(c, "Subjects fetched", subjectDTO.FromSubjectModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/subjects/:id
func (h *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.JsonOK(c, "Subject fetched", subjectDTO.FromSubjectModel(m))
}

// PUT /api/a/subjects/:id
func (h *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m subjectModel.SubjectModel
	if err := h.DB.Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	if req.Name != nil && !strings.EqualFold(strings.TrimSpace(*req.Name), m.SubjectName) {
		var cnt int64
		if err := h.DB.Model(&subjectModel.SubjectModel{}).
			Where("LOWER(subject_name) = LOWER(?) AND subject_id <> ?", strings.TrimSpace(*req.Name), id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check subject name")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Subject name already in use")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Subject name already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated", subjectDTO.FromSubjectModel(m))
}

// DELETE /api/a/subjects/:id  (logical deactivation)
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	m.SubjectIsActive = false
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate subject")
	}
	return helper.JsonDeleted(c, "Subject deactivated", fiber.Map{"subject_id": id})
}
