// internals/features/records/absences/model/absence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Absence type values
const (
	AbsenceMatin           = "matin"
	AbsenceApresMidi       = "apres_midi"
	AbsenceJourneeComplete = "journee_complete"
	AbsenceRetard          = "retard"
)

// NOTE: one row per (student, date, type); a late arrival and a missed
// afternoon on the same day are two rows.
type AbsenceModel struct {
	AbsenceID uuid.UUID `gorm:"column:absence_id;type:uuid;default:gen_random_uuid();primaryKey" json:"absence_id"`

	AbsenceStudentID uuid.UUID      `gorm:"column:absence_student_id;type:uuid;not null;index;uniqueIndex:uq_absences_student_date_type" json:"absence_student_id"`
	AbsenceDate      datatypes.Date `gorm:"column:absence_date;not null;uniqueIndex:uq_absences_student_date_type" json:"absence_date"`
	AbsenceType      string         `gorm:"column:absence_type;type:varchar(20);not null;uniqueIndex:uq_absences_student_date_type;check:absence_type IN ('matin','apres_midi','journee_complete','retard')" json:"absence_type"`

	AbsenceIsJustified   bool       `gorm:"column:absence_is_justified;not null;default:false" json:"absence_is_justified"`
	AbsenceJustification *string    `gorm:"column:absence_justification;type:text" json:"absence_justification,omitempty"`
	AbsenceJustifiedAt   *time.Time `gorm:"column:absence_justified_at" json:"absence_justified_at,omitempty"`

	AbsenceCreatedAt time.Time `gorm:"column:absence_created_at;not null;autoCreateTime" json:"absence_created_at"`
	AbsenceUpdatedAt time.Time `gorm:"column:absence_updated_at;not null;autoUpdateTime" json:"absence_updated_at"`
}

func (AbsenceModel) TableName() string { return "absences" }
