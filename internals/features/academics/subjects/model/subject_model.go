// internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - subject_name is unique school-wide
// - subject_coefficient weights every grade of this subject in average
//   computation, integer >= 1
type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	SubjectName        string  `gorm:"column:subject_name;type:varchar(120);not null;uniqueIndex:uq_subjects_name" json:"subject_name"`
	SubjectCoefficient int     `gorm:"column:subject_coefficient;not null;check:subject_coefficient >= 1" json:"subject_coefficient"`
	SubjectDesc        *string `gorm:"column:subject_desc;type:text" json:"subject_desc,omitempty"`

	SubjectIsActive  bool           `gorm:"column:subject_is_active;not null;default:true" json:"subject_is_active"`
	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
