// internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherDTO "schooladmin_backend/internals/features/school/teachers/dto"
	teacherModel "schooladmin_backend/internals/features/school/teachers/model"
	helper "schooladmin_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// POST /api/a/teachers
func (h *TeacherController) Create(c *fiber.Ctx) error {
	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&teacherModel.TeacherModel{}).
			Where("teacher_email = ?", req.Email).Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check teacher email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Teacher email already in use")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Teacher email already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
		}
		c.Locals("created_teacher", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_teacher").(teacherModel.TeacherModel)
	return helper.JsonCreated(c, "Teacher created", teacherDTO.FromTeacherModel(m))
}

// GET /api/a/teachers?status=&search=
func (h *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&teacherModel.TeacherModel{})
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("teacher_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("teacher_first_name ILIKE ? OR teacher_last_name ILIKE ? OR teacher_email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []teacherModel.TeacherModel
	if err := q.Order("teacher_last_name ASC, teacher_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list teachers")
	}
	return helper.JsonList(c, "Teachers fetched", teacherDTO.FromTeacherModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/teachers/:id
func (h *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var m teacherModel.TeacherModel
	if err := h.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.JsonOK(c, "Teacher fetched", teacherDTO.FromTeacherModel(m))
}

// PUT /api/a/teachers/:id
func (h *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m teacherModel.TeacherModel
	if err := h.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	if req.Email != nil && !strings.EqualFold(strings.TrimSpace(*req.Email), m.TeacherEmail) {
		var cnt int64
		if err := h.DB.Model(&teacherModel.TeacherModel{}).
			Where("teacher_email = ? AND teacher_id <> ?", strings.ToLower(strings.TrimSpace(*req.Email)), id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check teacher email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Teacher email already in use")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Teacher email already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated", teacherDTO.FromTeacherModel(m))
}

// DELETE /api/a/teachers/:id  (soft delete + status flip)
func (h *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m teacherModel.TeacherModel
		if err := tx.Where("teacher_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
		}

		m.TeacherStatus = teacherModel.TeacherStatusInactif
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update teacher")
		}
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete teacher")
		}

		// a departed teacher keeps no class assignments
		if err := tx.Where("assignment_teacher_id = ?", id).
			Delete(&teacherModel.TeachingAssignmentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear teaching assignments")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}
