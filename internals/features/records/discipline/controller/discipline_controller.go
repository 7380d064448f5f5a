// internals/features/records/discipline/controller/discipline_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	disciplineDTO "schooladmin_backend/internals/features/records/discipline/dto"
	disciplineModel "schooladmin_backend/internals/features/records/discipline/model"
	studentModel "schooladmin_backend/internals/features/school/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type DisciplineController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDisciplineController(db *gorm.DB) *DisciplineController {
	return &DisciplineController{DB: db, Validate: validator.New()}
}

// POST /api/a/discipline
func (h *DisciplineController) Create(c *fiber.Ctx) error {
	var req disciplineDTO.CreateDisciplineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", req.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check student")
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create discipline record")
	}
	return helper.JsonCreated(c, "Discipline record created", disciplineDTO.FromDisciplineModel(m))
}

// GET /api/a/discipline?student_id=&sanction=&status=
func (h *DisciplineController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&disciplineModel.DisciplineRecordModel{})
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("discipline_student_id = ?", id)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("sanction"))); v != "" {
		q = q.Where("discipline_sanction = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("discipline_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count discipline records")
	}

	var rows []disciplineModel.DisciplineRecordModel
	if err := q.Order("discipline_date DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list discipline records")
	}
	return helper.JsonList(c, "Discipline records fetched", disciplineDTO.FromDisciplineModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/discipline/:id
func (h *DisciplineController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid discipline record ID")
	}

	var m disciplineModel.DisciplineRecordModel
	if err := h.DB.Where("discipline_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Discipline record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch discipline record")
	}
	return helper.JsonOK(c, "Discipline record fetched", disciplineDTO.FromDisciplineModel(m))
}

// PUT /api/a/discipline/:id
func (h *DisciplineController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid discipline record ID")
	}

	var req disciplineDTO.UpdateDisciplineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m disciplineModel.DisciplineRecordModel
	if err := h.DB.Where("discipline_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Discipline record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch discipline record")
	}
	if m.DisciplineStatus == disciplineModel.CaseTermine || m.DisciplineStatus == disciplineModel.CaseRejete {
		return fiber.NewError(fiber.StatusConflict, "Closed discipline records cannot be edited")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update discipline record")
	}
	return helper.JsonUpdated(c, "Discipline record updated", disciplineDTO.FromDisciplineModel(m))
}

// PATCH /api/a/discipline/:id/close
func (h *DisciplineController) Close(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid discipline record ID")
	}

	var req disciplineDTO.CloseDisciplineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m disciplineModel.DisciplineRecordModel
	if err := h.DB.Where("discipline_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Discipline record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch discipline record")
	}
	if m.DisciplineStatus == disciplineModel.CaseTermine || m.DisciplineStatus == disciplineModel.CaseRejete {
		return fiber.NewError(fiber.StatusConflict, "Discipline record is already closed")
	}

	m.DisciplineStatus = req.Status
	if req.Resolution != nil {
		v := strings.TrimSpace(*req.Resolution)
		if v != "" {
			m.DisciplineResolution = &v
		}
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to close discipline record")
	}
	return helper.JsonUpdated(c, "Discipline record closed", disciplineDTO.FromDisciplineModel(m))
}

// DELETE /api/a/discipline/:id
func (h *DisciplineController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid discipline record ID")
	}

	res := h.DB.Where("discipline_id = ?", id).Delete(&disciplineModel.DisciplineRecordModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete discipline record")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Discipline record not found")
	}
	return helper.JsonDeleted(c, "Discipline record deleted", fiber.Map{"discipline_id": id})
}
