// internals/features/academics/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Evaluation type values
const (
	EvaluationComposition    = "composition"
	EvaluationControlledTest = "controlled_test"
	EvaluationExam           = "exam"
	EvaluationHomework       = "homework"
)

// NOTE:
// - one grade per (student, subject, sequence); sequences run 1..6 over
//   the school year, two per trimester
// - grade_final_score is the value that enters average computation; it
//   defaults to grade_score when no moderation is applied
// - grades are removed for real on delete, there is no soft-delete column
type GradeModel struct {
	GradeID uuid.UUID `gorm:"column:grade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_id"`

	GradeStudentID uuid.UUID `gorm:"column:grade_student_id;type:uuid;not null;index;uniqueIndex:uq_grades_student_subject_sequence" json:"grade_student_id"`
	GradeSubjectID uuid.UUID `gorm:"column:grade_subject_id;type:uuid;not null;index;uniqueIndex:uq_grades_student_subject_sequence" json:"grade_subject_id"`
	GradeSequence  int       `gorm:"column:grade_sequence;not null;uniqueIndex:uq_grades_student_subject_sequence;check:grade_sequence BETWEEN 1 AND 6" json:"grade_sequence"`

	GradeEvaluationType string  `gorm:"column:grade_evaluation_type;type:varchar(20);not null;check:grade_evaluation_type IN ('composition','controlled_test','exam','homework')" json:"grade_evaluation_type"`
	GradeScore          float64 `gorm:"column:grade_score;not null;check:grade_score >= 0 AND grade_score <= 20" json:"grade_score"`
	GradeFinalScore     float64 `gorm:"column:grade_final_score;not null;check:grade_final_score >= 0 AND grade_final_score <= 20" json:"grade_final_score"`

	GradeCompositionDate datatypes.Date `gorm:"column:grade_composition_date;not null" json:"grade_composition_date"`
	GradeRemark          *string        `gorm:"column:grade_remark;type:text" json:"grade_remark,omitempty"`

	GradeCreatedAt time.Time `gorm:"column:grade_created_at;not null;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time `gorm:"column:grade_updated_at;not null;autoUpdateTime" json:"grade_updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
