// internals/features/records/absences/controller/absence_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	absenceDTO "schooladmin_backend/internals/features/records/absences/dto"
	absenceModel "schooladmin_backend/internals/features/records/absences/model"
	studentModel "schooladmin_backend/internals/features/school/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type AbsenceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAbsenceController(db *gorm.DB) *AbsenceController {
	return &AbsenceController{DB: db, Validate: validator.New()}
}

// POST /api/a/absences
func (h *AbsenceController) Create(c *fiber.Ctx) error {
	var req absenceDTO.CreateAbsenceRequest
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
		if !student.StudentIsActive {
			return fiber.NewError(fiber.StatusConflict, "Student is inactive")
		}

		var cnt int64
		if err := tx.Model(&absenceModel.AbsenceModel{}).
			Where("absence_student_id = ? AND absence_date = ? AND absence_type = ?",
				req.StudentID, req.Date, req.Type).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing absence")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Absence already recorded for this student, date and type")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Absence already recorded for this student, date and type")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create absence")
		}
		c.Locals("created_absence", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_absence").(absenceModel.AbsenceModel)
	return helper.JsonCreated(c, "Absence created", absenceDTO.FromAbsenceModel(m))
}

// GET /api/a/absences?student_id=&type=&justified=&from=&to=
func (h *AbsenceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&absenceModel.AbsenceModel{})
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("absence_student_id = ?", id)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("type"))); v != "" {
		q = q.Where("absence_type = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("justified"))); v == "true" || v == "false" {
		q = q.Where("absence_is_justified = ?", v == "true")
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid from date")
		}
		q = q.Where("absence_date >= ?", v)
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid to date")
		}
		q = q.Where("absence_date <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count absences")
	}

	var rows []absenceModel.AbsenceModel
	if err := q.Order("absence_date DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list absences")
	}
	return helper.JsonList(c, "Absences fetched", absenceDTO.FromAbsenceModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/absences/:id
func (h *AbsenceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid absence ID")
	}

	var m absenceModel.AbsenceModel
	if err := h.DB.Where("absence_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Absence not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch absence")
	}
	return helper.JsonOK(c, "Absence fetched", absenceDTO.FromAbsenceModel(m))
}

// PATCH /api/a/absences/:id/justify
func (h *AbsenceController) Justify(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid absence ID")
	}

	var req absenceDTO.JustifyAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Justification = strings.TrimSpace(req.Justification)
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m absenceModel.AbsenceModel
	if err := h.DB.Where("absence_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Absence not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch absence")
	}
	if m.AbsenceIsJustified {
		return fiber.NewError(fiber.StatusConflict, "Absence is already justified")
	}

	now := time.Now()
	m.AbsenceIsJustified = true
	m.AbsenceJustification = &req.Justification
	m.AbsenceJustifiedAt = &now
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to justify absence")
	}
	return helper.JsonUpdated(c, "Absence justified", absenceDTO.FromAbsenceModel(m))
}

// DELETE /api/a/absences/:id
func (h *AbsenceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid absence ID")
	}

	res := h.DB.Where("absence_id = ?", id).Delete(&absenceModel.AbsenceModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete absence")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Absence not found")
	}
	return helper.JsonDeleted(c, "Absence deleted", fiber.Map{"absence_id": id})
}

func (h *AbsenceController) statsFor(q *gorm.DB) (*absenceDTO.AbsenceStatsResponse, error) {
	var agg struct {
		Total            int64
		JustifiedCount   int64
		UnjustifiedCount int64
		MorningCount     int64
		AfternoonCount   int64
		FullDayCount     int64
		LateCount        int64
	}
	err := q.Select(`
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE absence_is_justified)       AS justified_count,
		COUNT(*) FILTER (WHERE NOT absence_is_justified)   AS unjustified_count,
		COUNT(*) FILTER (WHERE absence_type = 'matin')             AS morning_count,
		COUNT(*) FILTER (WHERE absence_type = 'apres_midi')        AS afternoon_count,
		COUNT(*) FILTER (WHERE absence_type = 'journee_complete')  AS full_day_count,
		COUNT(*) FILTER (WHERE absence_type = 'retard')            AS late_count
	`).Scan(&agg).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to compute absence statistics")
	}
	return &absenceDTO.AbsenceStatsResponse{
		Total:            agg.Total,
		JustifiedCount:   agg.JustifiedCount,
		UnjustifiedCount: agg.UnjustifiedCount,
		MorningCount:     agg.MorningCount,
		AfternoonCount:   agg.AfternoonCount,
		FullDayCount:     agg.FullDayCount,
		LateCount:        agg.LateCount,
	}, nil
}

// GET /api/a/absences/student/:studentId/stats
func (h *AbsenceController) StudentStats(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("studentId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	stats, err := h.statsFor(h.DB.Model(&absenceModel.AbsenceModel{}).
		Where("absence_student_id = ?", studentID))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Absence statistics computed", stats)
}

// GET /api/a/absences/class/:classId/stats
func (h *AbsenceController) ClassStats(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}

	stats, err := h.statsFor(h.DB.Model(&absenceModel.AbsenceModel{}).
		Where("absence_student_id IN (?)",
			h.DB.Model(&studentModel.StudentModel{}).
				Select("student_id").Where("student_class_id = ?", classID)))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Absence statistics computed", stats)
}
