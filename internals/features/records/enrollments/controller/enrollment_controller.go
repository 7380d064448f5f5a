// internals/features/records/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentDTO "schooladmin_backend/internals/features/records/enrollments/dto"
	enrollmentModel "schooladmin_backend/internals/features/records/enrollments/model"
	enrollmentService "schooladmin_backend/internals/features/records/enrollments/service"
	studentModel "schooladmin_backend/internals/features/school/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: validator.New()}
}

// POST /api/a/enrollments
func (h *EnrollmentController) Create(c *fiber.Ctx) error {
	var req enrollmentDTO.CreateEnrollmentRequest
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
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_student_id = ? AND enrollment_school_year = ?", req.StudentID, req.SchoolYear).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing enrollment")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Student is already enrolled for this school year")
		}

		m := req.ToModel()
		m.EnrollmentStatus = enrollmentService.DeriveStatus(
			m.EnrollmentTotalFees, m.EnrollmentPaidAmount, m.EnrollmentDate, time.Now())
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Student is already enrolled for this school year")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enrollment")
		}
		c.Locals("created_enrollment", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_enrollment").(enrollmentModel.EnrollmentModel)
	return helper.JsonCreated(c, "Enrollment created", enrollmentDTO.FromEnrollmentModel(m))
}

// GET /api/a/enrollments?student_id=&school_year=&status=
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&enrollmentModel.EnrollmentModel{})
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("enrollment_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("school_year")); v != "" {
		q = q.Where("enrollment_school_year = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("enrollment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := q.Order("enrollment_date DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list enrollments")
	}
	return helper.JsonList(c, "Enrollments fetched", enrollmentDTO.FromEnrollmentModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/enrollments/:id
func (h *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var m enrollmentModel.EnrollmentModel
	if err := h.DB.Where("enrollment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	return helper.JsonOK(c, "Enrollment fetched", enrollmentDTO.FromEnrollmentModel(m))
}

// PUT /api/a/enrollments/:id
func (h *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var req enrollmentDTO.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m enrollmentModel.EnrollmentModel
	if err := h.DB.Where("enrollment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	// fees already collected cannot be invalidated by a fee change
	if req.TotalFees != nil && *req.TotalFees < m.EnrollmentPaidAmount {
		return fiber.NewError(fiber.StatusConflict, "Total fees cannot drop below the amount already paid")
	}

	req.Apply(&m)
	m.EnrollmentStatus = enrollmentService.DeriveStatus(
		m.EnrollmentTotalFees, m.EnrollmentPaidAmount, m.EnrollmentDate, time.Now())
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update enrollment")
	}
	return helper.JsonUpdated(c, "Enrollment updated", enrollmentDTO.FromEnrollmentModel(m))
}

// DELETE /api/a/enrollments/:id  (soft delete)
func (h *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	res := h.DB.Where("enrollment_id = ?", id).Delete(&enrollmentModel.EnrollmentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonDeleted(c, "Enrollment deleted", fiber.Map{"enrollment_id": id})
}

// POST /api/a/enrollments/:id/payments
func (h *EnrollmentController) RecordPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var req enrollmentDTO.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	m, err := enrollmentService.RecordPayment(h.DB, id, req.Amount, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, enrollmentService.ErrNonPositiveAmount):
			return fiber.NewError(fiber.StatusBadRequest, "Payment amount must be greater than zero")
		case errors.Is(err, enrollmentService.ErrAmountExceedsOwed):
			return fiber.NewError(fiber.StatusConflict, "Payment amount exceeds remaining fees")
		case errors.Is(err, enrollmentService.ErrEnrollmentComplete):
			return fiber.NewError(fiber.StatusConflict, "Enrollment fees are already fully paid")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
		}
	}
	return helper.JsonUpdated(c, "Payment recorded", enrollmentDTO.FromEnrollmentModel(*m))
}

// PATCH /api/a/enrollments/:id/refresh-status
//
// Re-derives the status against the clock, flipping stale pending
// enrollments to expired.
func (h *EnrollmentController) RefreshStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var m enrollmentModel.EnrollmentModel
	if err := h.DB.Where("enrollment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	derived := enrollmentService.DeriveStatus(
		m.EnrollmentTotalFees, m.EnrollmentPaidAmount, m.EnrollmentDate, time.Now())
	if derived != m.EnrollmentStatus {
		m.EnrollmentStatus = derived
		if err := h.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to refresh enrollment status")
		}
	}
	return helper.JsonUpdated(c, "Enrollment status refreshed", enrollmentDTO.FromEnrollmentModel(m))
}

// GET /api/a/enrollments/stats?school_year=
func (h *EnrollmentController) Stats(c *fiber.Ctx) error {
	year := strings.TrimSpace(c.Query("school_year"))

	q := h.DB.Model(&enrollmentModel.EnrollmentModel{})
	if year != "" {
		q = q.Where("enrollment_school_year = ?", year)
	}

	var agg struct {
		Total          int64
		PendingCount   int64
		PartialCount   int64
		CompleteCount  int64
		ExpiredCount   int64
		ExpectedFees   int64
		CollectedFees  int64
		OutstandingFee int64
	}
	err := q.Select(`
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE enrollment_status = 'pending')  AS pending_count,
		COUNT(*) FILTER (WHERE enrollment_status = 'partial')  AS partial_count,
		COUNT(*) FILTER (WHERE enrollment_status = 'complete') AS complete_count,
		COUNT(*) FILTER (WHERE enrollment_status = 'expired')  AS expired_count,
		COALESCE(SUM(enrollment_total_fees), 0)       AS expected_fees,
		COALESCE(SUM(enrollment_paid_amount), 0)      AS collected_fees,
		COALESCE(SUM(enrollment_remaining_amount), 0) AS outstanding_fee
	`).Scan(&agg).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute enrollment statistics")
	}

	return helper.JsonOK(c, "Enrollment statistics computed", enrollmentDTO.EnrollmentStatsResponse{
		SchoolYear:     year,
		Total:          agg.Total,
		PendingCount:   agg.PendingCount,
		PartialCount:   agg.PartialCount,
		CompleteCount:  agg.CompleteCount,
		ExpiredCount:   agg.ExpiredCount,
		ExpectedFees:   agg.ExpectedFees,
		CollectedFees:  agg.CollectedFees,
		OutstandingFee: agg.OutstandingFee,
	})
}
