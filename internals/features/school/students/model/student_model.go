// internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Student status values
const (
	StudentStatusInscrit    = "inscrit"
	StudentStatusRedoublant = "redoublant"
	StudentStatusNouveau    = "nouveau"
	StudentStatusTransfere  = "transfere"
	StudentStatusAbandonne  = "abandonne"
)

// NOTE:
// - student_matricule is the school-wide registration number, unique
// - student_class_id is the current class; class headcount bookkeeping is
//   done in the controller inside the same transaction
// - student_section_id must agree with the class's section; the
//   controller enforces it on every (re)assignment
type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentSectionID uuid.UUID `gorm:"column:student_section_id;type:uuid;not null;index" json:"student_section_id"`
	StudentClassID   uuid.UUID `gorm:"column:student_class_id;type:uuid;not null;index" json:"student_class_id"`

	StudentMatricule string `gorm:"column:student_matricule;type:varchar(40);not null;uniqueIndex:uq_students_matricule" json:"student_matricule"`
	StudentFirstName string `gorm:"column:student_first_name;type:varchar(100);not null" json:"student_first_name"`
	StudentLastName  string `gorm:"column:student_last_name;type:varchar(100);not null" json:"student_last_name"`

	StudentGender     string         `gorm:"column:student_gender;type:varchar(10);not null;check:student_gender IN ('masculin','feminin')" json:"student_gender"`
	StudentBirthDate  datatypes.Date `gorm:"column:student_birth_date;not null" json:"student_birth_date"`
	StudentBirthPlace *string        `gorm:"column:student_birth_place;type:varchar(120)" json:"student_birth_place,omitempty"`

	StudentStatus string `gorm:"column:student_status;type:varchar(20);not null;default:'nouveau';check:student_status IN ('inscrit','redoublant','nouveau','transfere','abandonne')" json:"student_status"`

	StudentGuardianName  string  `gorm:"column:student_guardian_name;type:varchar(150);not null" json:"student_guardian_name"`
	StudentGuardianPhone string  `gorm:"column:student_guardian_phone;type:varchar(30);not null" json:"student_guardian_phone"`
	StudentAddress       *string `gorm:"column:student_address;type:text" json:"student_address,omitempty"`

	StudentIsActive  bool           `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
