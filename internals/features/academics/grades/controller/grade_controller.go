// internals/features/academics/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeDTO "schooladmin_backend/internals/features/academics/grades/dto"
	gradeModel "schooladmin_backend/internals/features/academics/grades/model"
	gradeService "schooladmin_backend/internals/features/academics/grades/service"
	subjectModel "schooladmin_backend/internals/features/academics/subjects/model"
	studentModel "schooladmin_backend/internals/features/school/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type GradeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db, Validate: validator.New()}
}

func parseSequence(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("sequence"))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Missing sequence query parameter")
	}
	seq, err := strconv.Atoi(raw)
	if err != nil || seq < 1 || seq > 6 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Sequence must be between 1 and 6")
	}
	return seq, nil
}

// POST /api/a/grades
func (h *GradeController) Create(c *fiber.Ctx) error {
	var req gradeDTO.CreateGradeRequest
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

		var subject subjectModel.SubjectModel
		if err := tx.Where("subject_id = ?", req.SubjectID).First(&subject).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check subject")
		}
		if !subject.SubjectIsActive {
			return fiber.NewError(fiber.StatusConflict, "Subject is inactive")
		}

		var cnt int64
		if err := tx.Model(&gradeModel.GradeModel{}).
			Where("grade_student_id = ? AND grade_subject_id = ? AND grade_sequence = ?",
				req.StudentID, req.SubjectID, req.Sequence).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing grade")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Grade already recorded for this student, subject and sequence")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Grade already recorded for this student, subject and sequence")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create grade")
		}
		c.Locals("created_grade", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_grade").(gradeModel.GradeModel)
	return helper.JsonCreated(c, "Grade created", gradeDTO.FromGradeModel(m))
}

// GET /api/a/grades?student_id=&subject_id=&sequence=
func (h *GradeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&gradeModel.GradeModel{})
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("grade_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("subject_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject_id filter")
		}
		q = q.Where("grade_subject_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("sequence")); v != "" {
		seq, err := strconv.Atoi(v)
		if err != nil || seq < 1 || seq > 6 {
			return fiber.NewError(fiber.StatusBadRequest, "Sequence must be between 1 and 6")
		}
		q = q.Where("grade_sequence = ?", seq)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count grades")
	}

	var rows []gradeModel.GradeModel
	if err := q.Order("grade_sequence ASC, grade_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list grades")
	}
	return helper.JsonList(c, "Grades fetched", gradeDTO.FromGradeModels(rows), helper.BuildPagination(total, p))
}

// GET /api/a/grades/:id
func (h *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid grade ID")
	}

	var m gradeModel.GradeModel
	if err := h.DB.Where("grade_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Grade not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch grade")
	}
	return helper.JsonOK(c, "Grade fetched", gradeDTO.FromGradeModel(m))
}

// PUT /api/a/grades/:id
func (h *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid grade ID")
	}

	var req gradeDTO.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m gradeModel.GradeModel
	if err := h.DB.Where("grade_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Grade not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch grade")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update grade")
	}
	return helper.JsonUpdated(c, "Grade updated", gradeDTO.FromGradeModel(m))
}

// DELETE /api/a/grades/:id  (hard delete)
func (h *GradeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid grade ID")
	}

	res := h.DB.Where("grade_id = ?", id).Delete(&gradeModel.GradeModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete grade")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Grade not found")
	}
	return helper.JsonDeleted(c, "Grade deleted", fiber.Map{"grade_id": id})
}

// gradeLine is the scan target for the grade x subject join.
type gradeLine struct {
	GradeStudentID     uuid.UUID
	GradeSubjectID     uuid.UUID
	GradeScore         float64
	GradeFinalScore    float64
	SubjectName        string
	SubjectCoefficient int
}

func (h *GradeController) linesForStudents(studentIDs []uuid.UUID, sequence int) ([]gradeLine, error) {
	var lines []gradeLine
	err := h.DB.Table("grades").
		Select("grades.grade_student_id, grades.grade_subject_id, grades.grade_score, grades.grade_final_score, subjects.subject_name, subjects.subject_coefficient").
		Joins("JOIN subjects ON subjects.subject_id = grades.grade_subject_id").
		Where("grades.grade_sequence = ? AND grades.grade_student_id IN ?", sequence, studentIDs).
		Order("subjects.subject_name ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	return lines, nil
}

// GET /api/a/grades/student/:studentId/bulletin?sequence=N
func (h *GradeController) Bulletin(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("studentId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}
	seq, err := parseSequence(c)
	if err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	lines, err := h.linesForStudents([]uuid.UUID{studentID}, seq)
	if err != nil {
		return err
	}

	resp := gradeDTO.BulletinResponse{
		StudentID: student.StudentID,
		Matricule: student.StudentMatricule,
		FullName:  student.StudentFirstName + " " + student.StudentLastName,
		ClassID:   student.StudentClassID,
		Sequence:  seq,
		Trimester: gradeService.Trimester(seq),
		Lines:     make([]gradeDTO.BulletinLine, 0, len(lines)),
	}
	weighted := make([]gradeService.WeightedScore, 0, len(lines))
	for _, l := range lines {
		resp.Lines = append(resp.Lines, gradeDTO.BulletinLine{
			SubjectID:   l.GradeSubjectID,
			SubjectName: l.SubjectName,
			Coefficient: l.SubjectCoefficient,
			Score:       l.GradeScore,
			FinalScore:  l.GradeFinalScore,
			Weighted:    l.GradeFinalScore * float64(l.SubjectCoefficient),
		})
		weighted = append(weighted, gradeService.WeightedScore{
			FinalScore:  l.GradeFinalScore,
			Coefficient: l.SubjectCoefficient,
		})
	}
	resp.Average = gradeService.WeightedAverage(weighted)
	resp.Mention = gradeService.Mention(resp.Average)
	resp.Appreciation = gradeService.Appreciation(resp.Average)

	return helper.JsonOK(c, "Bulletin computed", resp)
}

// classAverages computes the per-student weighted average of every graded
// active student in a class. Students with no grades in the sequence are
// left out.
func (h *GradeController) classAverages(classID uuid.UUID, sequence int) ([]gradeService.RankEntry, error) {
	var students []studentModel.StudentModel
	if err := h.DB.Where("student_class_id = ? AND student_is_active = TRUE", classID).
		Find(&students).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class roster")
	}
	if len(students) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.StudentID)
	}
	lines, err := h.linesForStudents(ids, sequence)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[uuid.UUID][]gradeService.WeightedScore, len(students))
	for _, l := range lines {
		byStudent[l.GradeStudentID] = append(byStudent[l.GradeStudentID], gradeService.WeightedScore{
			FinalScore:  l.GradeFinalScore,
			Coefficient: l.SubjectCoefficient,
		})
	}

	entries := make([]gradeService.RankEntry, 0, len(byStudent))
	for _, s := range students {
		scores, ok := byStudent[s.StudentID]
		if !ok {
			continue
		}
		entries = append(entries, gradeService.RankEntry{
			StudentID: s.StudentID,
			Matricule: s.StudentMatricule,
			FullName:  s.StudentFirstName + " " + s.StudentLastName,
			Average:   gradeService.WeightedAverage(scores),
		})
	}
	return entries, nil
}

// GET /api/a/grades/class/:classId/ranking?sequence=N
func (h *GradeController) Ranking(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}
	seq, err := parseSequence(c)
	if err != nil {
		return err
	}

	entries, err := h.classAverages(classID, seq)
	if err != nil {
		return err
	}
	ranked := gradeService.RankClass(entries)

	return helper.JsonOK(c, "Ranking computed", gradeDTO.RankingResponse{
		ClassID:        classID,
		Sequence:       seq,
		RankedStudents: len(ranked),
		Entries:        ranked,
	})
}

// GET /api/a/grades/class/:classId/statistics?sequence=N
func (h *GradeController) Statistics(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("classId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}
	seq, err := parseSequence(c)
	if err != nil {
		return err
	}

	entries, err := h.classAverages(classID, seq)
	if err != nil {
		return err
	}
	averages := make([]float64, 0, len(entries))
	for _, e := range entries {
		averages = append(averages, e.Average)
	}

	return helper.JsonOK(c, "Statistics computed", gradeDTO.StatisticsResponse{
		ClassID:       classID,
		Sequence:      seq,
		SequenceStats: gradeService.ComputeSequenceStats(averages),
	})
}
