// internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "schooladmin_backend/internals/features/school/classes/model"
	sectionModel "schooladmin_backend/internals/features/school/sections/model"
	studentDTO "schooladmin_backend/internals/features/school/students/dto"
	studentModel "schooladmin_backend/internals/features/school/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// lockClass loads a class row FOR UPDATE so headcount bookkeeping stays
// consistent under concurrent registrations.
func lockClass(tx *gorm.DB, id uuid.UUID) (*classModel.ClassModel, error) {
	var cls classModel.ClassModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("class_id = ?", id).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}
	return &cls, nil
}

func findSection(tx *gorm.DB, id uuid.UUID) (*sectionModel.SectionModel, error) {
	var sec sectionModel.SectionModel
	if err := tx.Where("section_id = ?", id).First(&sec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch section")
	}
	return &sec, nil
}

// ensureClassInSection rejects a registration whose class does not
// belong to the supplied section.
func ensureClassInSection(cls *classModel.ClassModel, sectionID uuid.UUID) error {
	if cls.ClassSectionID != sectionID {
		return fiber.NewError(fiber.StatusConflict, "Class is not in the selected section")
	}
	return nil
}

// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		sec, err := findSection(tx, req.SectionID)
		if err != nil {
			return err
		}
		if !sec.SectionIsActive {
			return fiber.NewError(fiber.StatusConflict, "Section is inactive")
		}

		cls, err := lockClass(tx, req.ClassID)
		if err != nil {
			return err
		}
		if !cls.ClassIsActive {
			return fiber.NewError(fiber.StatusConflict, "Class is inactive")
		}
		if err := ensureClassInSection(cls, req.SectionID); err != nil {
			return err
		}
		if cls.ClassHeadcount >= cls.ClassMaxCapacity {
			return fiber.NewError(fiber.StatusConflict, "Class is full")
		}

		var cnt int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_matricule = ?", req.Matricule).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check matricule")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Matricule already in use")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Matricule already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
		}

		cls.ClassHeadcount++
		if err := tx.Save(cls).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class headcount")
		}

		c.Locals("created_student", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_student").(studentModel.StudentModel)
	return helper.JsonCreated(c, "Student created", studentDTO.FromStudentModel(m))
}

// GET /api/a/students?class_id=&section_id=&status=&search=
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&studentModel.StudentModel{})
	if !strings.EqualFold(c.Query("with_inactive"), "true") {
		q = q.Where("student_is_active = TRUE")
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		cid, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid class_id filter")
		}
		q = q.Where("student_class_id = ?", cid)
	}
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		sid, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid section_id filter")
		}
		q = q.Where("student_section_id = ?", sid)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("student_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_matricule ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []studentModel.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list students")
	}
	return helper.JsonList(c, "Students fetched", studentDTO.FromStudentModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var m studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.JsonOK(c, "Student fetched", studentDTO.FromStudentModel(m))
}

// GET /api/a/students/matricule/:matricule
func (h *StudentController) GetByMatricule(c *fiber.Ctx) error {
	mat := strings.ToUpper(strings.TrimSpace(c.Params("matricule")))
	if mat == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid matricule")
	}

	var m studentModel.StudentModel
	if err := h.DB.Where("student_matricule = ?", mat).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.JsonOK(c, "Student fetched", studentDTO.FromStudentModel(m))
}

// PUT /api/a/students/:id
//
// Changing student_class_id is a transfer: the old class loses one head,
// the new class gains one, with the same capacity gate as Create.
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m studentModel.StudentModel
		if err := tx.Where("student_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
		}

		targetSection := m.StudentSectionID
		if req.SectionID != nil && *req.SectionID != m.StudentSectionID {
			if _, err := findSection(tx, *req.SectionID); err != nil {
				return err
			}
			targetSection = *req.SectionID
		}

		if req.ClassID != nil && *req.ClassID != m.StudentClassID {
			newCls, err := lockClass(tx, *req.ClassID)
			if err != nil {
				return err
			}
			if !newCls.ClassIsActive {
				return fiber.NewError(fiber.StatusConflict, "Target class is inactive")
			}
			if err := ensureClassInSection(newCls, targetSection); err != nil {
				return err
			}
			if newCls.ClassHeadcount >= newCls.ClassMaxCapacity {
				return fiber.NewError(fiber.StatusConflict, "Target class is full")
			}

			if m.StudentIsActive {
				oldCls, err := lockClass(tx, m.StudentClassID)
				if err != nil {
					return err
				}
				if oldCls.ClassHeadcount > 0 {
					oldCls.ClassHeadcount--
				}
				if err := tx.Save(oldCls).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class headcount")
				}
				newCls.ClassHeadcount++
				if err := tx.Save(newCls).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class headcount")
				}
			}
		} else if targetSection != m.StudentSectionID {
			var cls classModel.ClassModel
			if err := tx.Where("class_id = ?", m.StudentClassID).First(&cls).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
			}
			if err := ensureClassInSection(&cls, targetSection); err != nil {
				return err
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
		}

		c.Locals("updated_student", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("updated_student").(studentModel.StudentModel)
	return helper.JsonUpdated(c, "Student updated", studentDTO.FromStudentModel(m))
}

// DELETE /api/a/students/:id  (logical: deactivate + free the class seat)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m studentModel.StudentModel
		if err := tx.Where("student_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
		}
		if !m.StudentIsActive {
			return fiber.NewError(fiber.StatusConflict, "Student is already inactive")
		}

		cls, err := lockClass(tx, m.StudentClassID)
		if err != nil {
			return err
		}
		if cls.ClassHeadcount > 0 {
			cls.ClassHeadcount--
		}
		if err := tx.Save(cls).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class headcount")
		}

		m.StudentIsActive = false
		m.StudentStatus = studentModel.StudentStatusAbandonne
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate student")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Student deactivated", fiber.Map{"student_id": id})
}

// PATCH /api/a/students/:id/activate  (re-register a previously removed student)
func (h *StudentController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m studentModel.StudentModel
		if err := tx.Where("student_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
		}
		if m.StudentIsActive {
			return fiber.NewError(fiber.StatusConflict, "Student is already active")
		}

		cls, err := lockClass(tx, m.StudentClassID)
		if err != nil {
			return err
		}
		if !cls.ClassIsActive {
			return fiber.NewError(fiber.StatusConflict, "Class is inactive")
		}
		if cls.ClassHeadcount >= cls.ClassMaxCapacity {
			return fiber.NewError(fiber.StatusConflict, "Class is full")
		}
		cls.ClassHeadcount++
		if err := tx.Save(cls).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class headcount")
		}

		m.StudentIsActive = true
		m.StudentStatus = studentModel.StudentStatusInscrit
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to activate student")
		}

		c.Locals("activated_student", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("activated_student").(studentModel.StudentModel)
	return helper.JsonUpdated(c, "Student activated", studentDTO.FromStudentModel(m))
}
