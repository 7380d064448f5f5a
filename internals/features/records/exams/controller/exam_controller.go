// internals/features/records/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examDTO "schooladmin_backend/internals/features/records/exams/dto"
	examModel "schooladmin_backend/internals/features/records/exams/model"
	studentModel "schooladmin_backend/internals/features/school/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db, Validate: validator.New()}
}

// POST /api/a/exams
func (h *ExamController) Create(c *fiber.Ctx) error {
	var req examDTO.CreateExamDossierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.Where("student_id = ?", req.StudentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check student")
		}

		var cnt int64
		if err := tx.Model(&examModel.ExamDossierModel{}).
			Where("exam_student_id = ? AND exam_name = ? AND exam_session = ?",
				req.StudentID, req.Name, req.Session).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing dossier")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Exam dossier already exists for this student and session")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Exam dossier already exists for this student and session")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam dossier")
		}
		c.Locals("created_exam", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_exam").(examModel.ExamDossierModel)
	return helper.JsonCreated(c, "Exam dossier created", examDTO.FromExamDossierModel(m))
}

// GET /api/a/exams?student_id=&session=&status=
func (h *ExamController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&examModel.ExamDossierModel{})
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("exam_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("session")); v != "" {
		q = q.Where("exam_session = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("exam_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count exam dossiers")
	}

	var rows []examModel.ExamDossierModel
	if err := q.Order("exam_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list exam dossiers")
	}
	return helper.JsonList(c, "Exam dossiers fetched", examDTO.FromExamDossierModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/exams/:id
func (h *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam dossier ID")
	}

	var m examModel.ExamDossierModel
	if err := h.DB.Where("exam_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam dossier not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exam dossier")
	}
	return helper.JsonOK(c, "Exam dossier fetched", examDTO.FromExamDossierModel(m))
}

// PUT /api/a/exams/:id
func (h *ExamController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam dossier ID")
	}

	var req examDTO.UpdateExamDossierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m examModel.ExamDossierModel
	if err := h.DB.Where("exam_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam dossier not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exam dossier")
	}
	if m.ExamStatus == examModel.ExamTermine || m.ExamStatus == examModel.ExamRejete {
		return fiber.NewError(fiber.StatusConflict, "Exam dossier is already closed")
	}

	if req.Name != nil || req.Session != nil {
		name := m.ExamName
		if req.Name != nil {
			name = strings.TrimSpace(*req.Name)
		}
		session := m.ExamSession
		if req.Session != nil {
			session = strings.TrimSpace(*req.Session)
		}
		var cnt int64
		if err := h.DB.Model(&examModel.ExamDossierModel{}).
			Where("exam_student_id = ? AND exam_name = ? AND exam_session = ? AND exam_id <> ?",
				m.ExamStudentID, name, session, m.ExamID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing dossier")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Exam dossier already exists for this student and session")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Exam dossier already exists for this student and session")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam dossier")
	}
	return helper.JsonUpdated(c, "Exam dossier updated", examDTO.FromExamDossierModel(m))
}

// PATCH /api/a/exams/:id/status
func (h *ExamController) Transition(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam dossier ID")
	}

	var req examDTO.TransitionExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m examModel.ExamDossierModel
	if err := h.DB.Where("exam_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam dossier not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exam dossier")
	}
	// closed dossiers stay closed
	if m.ExamStatus == examModel.ExamTermine || m.ExamStatus == examModel.ExamRejete {
		return fiber.NewError(fiber.StatusConflict, "Exam dossier is already closed")
	}

	m.ExamStatus = req.Status
	if req.Result != nil {
		v := strings.TrimSpace(*req.Result)
		if v != "" {
			m.ExamResult = &v
		}
	}
	if req.Notes != nil {
		v := strings.TrimSpace(*req.Notes)
		if v != "" {
			m.ExamNotes = &v
		}
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam dossier")
	}
	return helper.JsonUpdated(c, "Exam dossier updated", examDTO.FromExamDossierModel(m))
}

// DELETE /api/a/exams/:id  (soft delete)
func (h *ExamController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam dossier ID")
	}

	res := h.DB.Where("exam_id = ?", id).Delete(&examModel.ExamDossierModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam dossier")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Exam dossier not found")
	}
	return helper.JsonDeleted(c, "Exam dossier deleted", fiber.Map{"exam_id": id})
}
