// internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Teacher status values
const (
	TeacherStatusActif    = "actif"
	TeacherStatusInactif  = "inactif"
	TeacherStatusSuspendu = "suspendu"
	TeacherStatusConge    = "conge"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	TeacherFirstName string `gorm:"column:teacher_first_name;type:varchar(100);not null" json:"teacher_first_name"`
	TeacherLastName  string `gorm:"column:teacher_last_name;type:varchar(100);not null" json:"teacher_last_name"`
	TeacherGender    string `gorm:"column:teacher_gender;type:varchar(10);not null;check:teacher_gender IN ('masculin','feminin')" json:"teacher_gender"`

	TeacherEmail   string  `gorm:"column:teacher_email;type:varchar(120);not null;uniqueIndex:uq_teachers_email" json:"teacher_email"`
	TeacherPhone   string  `gorm:"column:teacher_phone;type:varchar(30);not null" json:"teacher_phone"`
	TeacherAddress *string `gorm:"column:teacher_address;type:text" json:"teacher_address,omitempty"`

	TeacherDiploma  *string        `gorm:"column:teacher_diploma;type:varchar(150)" json:"teacher_diploma,omitempty"`
	TeacherHireDate datatypes.Date `gorm:"column:teacher_hire_date;not null" json:"teacher_hire_date"`

	TeacherStatus string `gorm:"column:teacher_status;type:varchar(10);not null;default:'actif';check:teacher_status IN ('actif','inactif','suspendu','conge')" json:"teacher_status"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
