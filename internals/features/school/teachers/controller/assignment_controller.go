// internals/features/school/teachers/controller/assignment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schooladmin_backend/internals/features/school/classes/model"
	subjectModel "schooladmin_backend/internals/features/academics/subjects/model"
	teacherDTO "schooladmin_backend/internals/features/school/teachers/dto"
	teacherModel "schooladmin_backend/internals/features/school/teachers/model"
	helper "schooladmin_backend/internals/helpers"
)

// POST /api/a/teachers/:id/assignments
func (h *TeacherController) CreateAssignment(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req teacherDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var teacher teacherModel.TeacherModel
		if err := tx.Where("teacher_id = ?", teacherID).First(&teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check teacher")
		}
		if teacher.TeacherStatus != teacherModel.TeacherStatusActif {
			return fiber.NewError(fiber.StatusConflict, "Teacher is not active")
		}

		var cnt int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_id = ? AND subject_is_active = TRUE", req.SubjectID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check subject")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}

		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND class_is_active = TRUE", req.ClassID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check class")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}

		if err := tx.Model(&teacherModel.TeachingAssignmentModel{}).
			Where("assignment_teacher_id = ? AND assignment_subject_id = ? AND assignment_class_id = ?",
				teacherID, req.SubjectID, req.ClassID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing assignment")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Teacher is already assigned to this subject and class")
		}

		now := time.Now()
		m := teacherModel.TeachingAssignmentModel{
			AssignmentTeacherID:  teacherID,
			AssignmentSubjectID:  req.SubjectID,
			AssignmentClassID:    req.ClassID,
			AssignmentSchoolYear: req.SchoolYear,
			AssignmentCreatedAt:  now,
			AssignmentUpdatedAt:  now,
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Teacher is already assigned to this subject and class")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignment")
		}
		c.Locals("created_assignment", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_assignment").(teacherModel.TeachingAssignmentModel)
	return helper.JsonCreated(c, "Assignment created", teacherDTO.FromAssignmentModel(m))
}

// GET /api/a/teachers/:id/assignments?school_year=
func (h *TeacherController) ListAssignments(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}

	q := h.DB.Where("assignment_teacher_id = ?", teacherID)
	if v := strings.TrimSpace(c.Query("school_year")); v != "" {
		q = q.Where("assignment_school_year = ?", v)
	}

	var rows []teacherModel.TeachingAssignmentModel
	if err := q.Order("assignment_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list assignments")
	}
	return helper.JsonOK(c, "Assignments fetched", teacherDTO.FromAssignmentModels(rows))
}

// DELETE /api/a/teachers/:id/assignments/:assignmentId
func (h *TeacherController) DeleteAssignment(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}
	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assignmentId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment ID")
	}

	res := h.DB.Where("assignment_id = ? AND assignment_teacher_id = ?", assignmentID, teacherID).
		Delete(&teacherModel.TeachingAssignmentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"assignment_id": assignmentID})
}
