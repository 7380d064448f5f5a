// internals/features/records/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exam dossier state values
const (
	ExamEnCours   = "en_cours"
	ExamTermine   = "termine"
	ExamEnAttente = "en_attente"
	ExamRejete    = "rejete"
)

// NOTE: one dossier per (student, exam, session). A dossier tracks the
// paperwork for an official exam registration, not the exam scores.
type ExamDossierModel struct {
	ExamID uuid.UUID `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`

	ExamStudentID uuid.UUID `gorm:"column:exam_student_id;type:uuid;not null;index;uniqueIndex:uq_exams_student_name_session" json:"exam_student_id"`
	ExamName      string    `gorm:"column:exam_name;type:varchar(120);not null;uniqueIndex:uq_exams_student_name_session" json:"exam_name"`
	ExamSession   string    `gorm:"column:exam_session;type:varchar(9);not null;uniqueIndex:uq_exams_student_name_session" json:"exam_session"`

	ExamStatus string  `gorm:"column:exam_status;type:varchar(15);not null;default:'en_attente';check:exam_status IN ('en_cours','termine','en_attente','rejete')" json:"exam_status"`
	ExamResult *string `gorm:"column:exam_result;type:varchar(120)" json:"exam_result,omitempty"`
	ExamNotes  *string `gorm:"column:exam_notes;type:text" json:"exam_notes,omitempty"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;not null;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;not null;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamDossierModel) TableName() string { return "exam_dossiers" }
